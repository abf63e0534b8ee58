package auth

import (
	"fmt"
	"log"
	"net/http"

	"pewec-api/config"
	"pewec-api/internal/logs"
	"pewec-api/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *AuthService
	LS          *logs.LogService
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": util.BindingErrorMessage(req, err)})
		return
	}

	user, err := ac.AuthService.GetAdmin(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := util.VerifyPassword(req.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	cfg := config.LoadConfig()

	tokenString, err := issueToken(user, cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	http.SetCookie(c.Writer, sessionCookie(tokenString, int(sessionDuration.Seconds())))

	entry := logs.SystemLog{
		Level:     "INFO",
		Service:   "auth",
		Action:    "LOGIN",
		Message:   fmt.Sprintf("Admin logged in with email: %s", user.Email),
		UserEmail: &user.Email,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		log.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": SessionUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, sessionCookie("", -1))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	tokenString, err := c.Cookie("access_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claims, err := parseToken(tokenString, cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userID, _ := claims["user_id"].(string)
	user, err := ac.AuthService.GetAdminByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": SessionUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
