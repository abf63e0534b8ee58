package course

import (
	"errors"
	"log"
	"net/http"

	"pewec-api/internal/logs"
	"pewec-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	CourseService *CourseService
	LS            *logs.LogService
}

// GetActiveCourses serves the public enquiry form.
func (cc *CourseController) GetActiveCourses(c *gin.Context) {
	courses, err := cc.CourseService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": courses})
}

func (cc *CourseController) GetAllCourses(c *gin.Context) {
	courses, err := cc.CourseService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": courses})
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": util.BindingErrorMessage(req, err)})
		return
	}

	course := Course{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		RepEmail:    req.RepEmail,
		IsActive:    true,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	created, err := cc.CourseService.Create(course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create course"})
		return
	}

	cc.audit("CREATE", "Course created: "+created.Name, created)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (cc *CourseController) UpdateCourse(c *gin.Context) {
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": util.BindingErrorMessage(req, err)})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.RepEmail != nil {
		updates["rep_email"] = *req.RepEmail
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	updated, err := cc.CourseService.Update(req.ID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update course"})
		return
	}

	cc.audit("UPDATE", "Course updated: "+updated.Name, updated)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (cc *CourseController) audit(action, message string, meta interface{}) {
	if cc.LS == nil {
		return
	}
	if err := cc.LS.Log(logs.SystemLog{
		Level:   "INFO",
		Service: "course",
		Action:  action,
		Message: message,
	}, meta); err != nil {
		log.Printf("Failed to insert log: %v\n", err)
	}
}
