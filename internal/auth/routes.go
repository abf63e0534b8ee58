package auth

import (
	"pewec-api/internal/logs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *AuthService, ls *logs.LogService) {
	ac := &AuthController{AuthService: s, LS: ls}

	grp := r.Group("/api/auth")
	{
		grp.POST("/login", ac.Login)
		grp.POST("/logout", ac.Logout)
		grp.GET("/me", ac.Me)
	}
}
