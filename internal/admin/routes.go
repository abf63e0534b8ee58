package admin

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *AdminService) {
	ac := &AdminController{AdminService: s}

	r.GET("/api/admin/stats", ac.GetStats)

	r.GET("/admin", ac.Dashboard)
	r.GET("/admin/login", ac.LoginPage)
}
