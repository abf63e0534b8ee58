package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pewec-api/internal/course"
	"pewec-api/internal/enquiry"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&enquiry.Contact{}, &enquiry.Enquiry{}, &course.Course{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedStatsData(t *testing.T, db *gorm.DB) {
	t.Helper()

	contact := enquiry.Contact{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	for i, read := range []bool{true, false, false} {
		e := enquiry.Enquiry{ContactID: contact.ID, EnquiryType: "general", Phone: "9876543210", IsRead: read}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed enquiry %d: %v", i, err)
		}
	}

	c := course.Course{Name: "Teacher Training", Type: course.TypeLongTerm, RepEmail: "rep@pewec.com", IsActive: true}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
}

func TestGetStats_Counts(t *testing.T) {
	db := newTestDB(t)
	seedStatsData(t, db)

	s := &AdminService{DB: db}
	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.Contacts != 1 || stats.Enquiries != 3 || stats.UnreadEnquiries != 2 || stats.Courses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestGetStats_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	s := &AdminService{DB: db}
	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Contacts != 0 || stats.Enquiries != 0 || stats.UnreadEnquiries != 0 || stats.Courses != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestStatsEndpoint(t *testing.T) {
	db := newTestDB(t)
	seedStatsData(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &AdminService{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Data DashboardStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Data.UnreadEnquiries != 2 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}

func TestStatsEndpoint_DBError_500(t *testing.T) {
	db := newTestDB(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &AdminService{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestAdminPages_Resolve(t *testing.T) {
	db := newTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &AdminService{DB: db})

	for _, path := range []string{"/admin", "/admin/login"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
