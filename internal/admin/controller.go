package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *AdminService
}

func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.AdminService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// The back office is a separate frontend. These handlers exist so the
// /admin paths resolve behind the gate; the frontend replaces them in
// deployments that serve both from one origin.
func (ac *AdminController) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!DOCTYPE html><title>PEWEC Admin</title><h1>PEWEC Admin</h1>"))
}

func (ac *AdminController) LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!DOCTYPE html><title>PEWEC Admin Login</title><h1>Sign in</h1>"))
}
