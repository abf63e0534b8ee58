package enquiry

import (
	"pewec-api/internal/logs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, enquiryService *EnquiryService, courses CourseDirectory, mail EmailSender, logService *logs.LogService) {
	enquiryController := &EnquiryController{
		EnquiryService: enquiryService,
		Courses:        courses,
		Mail:           mail,
		LS:             logService,
	}

	publicGroup := r.Group("/api/enquiries")
	{
		publicGroup.POST("", enquiryController.Submit)
	}

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/enquiries", enquiryController.ListEnquiries)
		adminGroup.PATCH("/enquiries/:id", enquiryController.UpdateEnquiry)
		adminGroup.DELETE("/enquiries/:id", enquiryController.DeleteEnquiry)
		adminGroup.GET("/contacts", enquiryController.ListContacts)
		adminGroup.GET("/contacts/:id", enquiryController.GetContact)
	}
}
