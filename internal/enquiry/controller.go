package enquiry

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"pewec-api/internal/course"
	"pewec-api/internal/logs"
	"pewec-api/internal/mailer"
	"pewec-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EnquiryController struct {
	EnquiryService *EnquiryService
	Courses        CourseDirectory
	Mail           EmailSender
	LS             *logs.LogService
}

// Submit handles the public enquiry form. Side effects are strictly
// ordered: contact upsert, course resolution for course enquiries, then
// the enquiry insert; emails go out only after the row is written and
// never fail the request.
func (ec *EnquiryController) Submit(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Unexpected error: %v\n", r)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		}
	}()

	var req SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	sub, ferrs := ParseSubmission(req)
	if len(ferrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": CombineErrors(ferrs)})
		return
	}

	contact, err := ec.EnquiryService.UpsertContact(sub.FirstName, sub.LastName, sub.Email)
	if err != nil {
		log.Printf("Contact upsert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create contact"})
		return
	}

	var courseRef *course.Course
	if sub.EnquiryType == "course" {
		courseRef, err = ec.Courses.GetByID(sub.CourseID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Course not found"})
			return
		}
	}

	e := Enquiry{
		ContactID:      contact.ID,
		EnquiryType:    sub.EnquiryType,
		EnquiryDetails: sub.Message,
		Phone:          sub.Phone,
	}
	// enquiry_type is authoritative: course columns stay null for every
	// other type even when the client supplied course data.
	if courseRef != nil {
		e.CourseID = &courseRef.ID
		e.CourseName = &courseRef.Name
	}

	created, err := ec.EnquiryService.CreateEnquiry(e)
	if err != nil {
		log.Printf("Enquiry insert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create enquiry"})
		return
	}

	ec.notify(contact, sub, courseRef)
	ec.audit(contact.Email, created)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enquiry submitted successfully"})
}

// notify issues the confirmation and, for course enquiries, the rep
// notification as two concurrent sends. Both are attempted to completion
// before the request returns; neither outcome affects the response.
func (ec *EnquiryController) notify(contact *Contact, sub *Submission, courseRef *course.Course) {
	if ec.Mail == nil {
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		var subject, body string
		if courseRef != nil {
			subject = mailer.SubjectCourseEnquiry
			body = mailer.CourseEnquiryBody(contact.FirstName+" "+contact.LastName, contact.Email, courseRef.Name, courseRef.Description)
		} else {
			subject = mailer.SubjectContactEnquiry
			body = mailer.ContactEnquiryBody(contact.FirstName, contact.LastName, contact.Email, sub.EnquiryType)
		}
		if err := ec.Mail.Send(contact.Email, subject, body); err != nil {
			log.Printf("Confirmation email failed for %s: %v\n", contact.Email, err)
		}
	}()

	if courseRef != nil && courseRef.RepEmail != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := mailer.RepNotificationBody(contact.FirstName, contact.LastName, contact.Email, sub.Phone, courseRef.Name, sub.Message)
			if err := ec.Mail.Send(courseRef.RepEmail, mailer.SubjectRepNotification(courseRef.Name), body); err != nil {
				log.Printf("Rep notification failed for %s: %v\n", courseRef.RepEmail, err)
			}
		}()
	}

	wg.Wait()
}

func (ec *EnquiryController) audit(email string, e *Enquiry) {
	if ec.LS == nil {
		return
	}
	if err := ec.LS.Log(logs.SystemLog{
		Level:     "INFO",
		Service:   "enquiry",
		Action:    "SUBMIT",
		Message:   "Enquiry submitted (" + e.EnquiryType + ")",
		UserEmail: &email,
	}, e); err != nil {
		log.Printf("Failed to insert log: %v\n", err)
	}
}

func (ec *EnquiryController) ListEnquiries(c *gin.Context) {
	page := parsePage(c.Query("page"))
	typeFilter := c.Query("type")
	if typeFilter != "" && typeFilter != "all" && !enquiryTypes[typeFilter] {
		typeFilter = "all"
	}

	rows, total, totalPages, err := ec.EnquiryService.ListEnquiries(page, typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch enquiries"})
		return
	}

	extra := url.Values{}
	if typeFilter != "" && typeFilter != "all" {
		extra.Set("type", typeFilter)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        rows,
		"page":        page,
		"page_size":   PageSize,
		"total":       total,
		"total_pages": totalPages,
		"pages":       pagination.Sequence(page, totalPages),
		"links":       pageLinks("/admin/enquiries", page, totalPages, extra),
	})
}

func (ec *EnquiryController) UpdateEnquiry(c *gin.Context) {
	var req UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "is_read: Required"})
		return
	}

	updated, err := ec.EnquiryService.SetRead(c.Param("id"), *req.IsRead)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Enquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update enquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (ec *EnquiryController) DeleteEnquiry(c *gin.Context) {
	if err := ec.EnquiryService.DeleteEnquiry(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Enquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete enquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enquiry deleted"})
}

func (ec *EnquiryController) ListContacts(c *gin.Context) {
	page := parsePage(c.Query("page"))

	rows, total, totalPages, err := ec.EnquiryService.ListContacts(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        rows,
		"page":        page,
		"page_size":   PageSize,
		"total":       total,
		"total_pages": totalPages,
		"pages":       pagination.Sequence(page, totalPages),
		"links":       pageLinks("/admin/contacts", page, totalPages, nil),
	})
}

func (ec *EnquiryController) GetContact(c *gin.Context) {
	contact, enquiries, err := ec.EnquiryService.GetContactWithEnquiries(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"contact":   contact,
		"enquiries": enquiries,
	})
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pageLinks(basePath string, page, totalPages int, extra url.Values) gin.H {
	links := gin.H{"self": pagination.PageURL(basePath, page, extra)}
	if page > 1 {
		links["prev"] = pagination.PageURL(basePath, page-1, extra)
	}
	if page < totalPages {
		links["next"] = pagination.PageURL(basePath, page+1, extra)
	}
	return links
}
