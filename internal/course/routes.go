package course

import (
	"pewec-api/internal/logs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, courseService *CourseService, logService *logs.LogService) {
	courseController := &CourseController{CourseService: courseService, LS: logService}

	publicGroup := r.Group("/api/courses")
	{
		publicGroup.GET("", courseController.GetActiveCourses)
	}

	adminGroup := r.Group("/api/admin/courses")
	{
		adminGroup.GET("", courseController.GetAllCourses)
		adminGroup.POST("", courseController.CreateCourse)
		adminGroup.PATCH("", courseController.UpdateCourse)
	}
}
