package enquiry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pewec-api/internal/course"
	"pewec-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Contact{}, &Enquiry{}, &course.Course{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

type mockEmail struct {
	To      string
	Subject string
	Body    string
}

type mockMailer struct {
	mu   sync.Mutex
	fail bool
	sent []mockEmail
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mockEmail{To: to, Subject: subject, Body: htmlBody})
	if m.fail {
		return fmt.Errorf("smtp down")
	}
	return nil
}

func (m *mockMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, e := range m.sent {
		out = append(out, e.To)
	}
	return out
}

func setupEnquiryRouter(db *gorm.DB, mail EmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := &EnquiryService{DB: db}
	courses := &course.CourseService{DB: db}
	ls := &logs.LogService{DB: db}
	RegisterRoutes(r, svc, courses, mail, ls)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doReq(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func marshalBody(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func validGeneralBody() map[string]any {
	return map[string]any{
		"first_name":   "John",
		"last_name":    "Doe",
		"email":        "john@example.com",
		"phone":        "9876543210",
		"enquiry_type": "general",
		"message":      "Hello there",
	}
}

func seedCourse(t *testing.T, db *gorm.DB, name string, active bool) course.Course {
	t.Helper()
	c := course.Course{Name: name, Type: course.TypeLongTerm, RepEmail: "rep@pewec.com", IsActive: active}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}
