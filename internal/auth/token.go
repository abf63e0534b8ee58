package auth

import (
	"net/http"
	"time"

	"pewec-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionDuration = 24 * time.Hour

func issueToken(user *AdminUser, secret string) (string, error) {
	exp := time.Now().Add(sessionDuration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     exp.Unix(),
	})
	return token.SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "access_token",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

// Authenticated reports whether the request carries a valid session
// cookie. The admin gate uses it before any route logic runs.
func Authenticated(c *gin.Context) bool {
	cfg := config.LoadConfig()

	tokenString, err := c.Cookie("access_token")
	if err != nil {
		return false
	}

	_, err = parseToken(tokenString, cfg.JWTSecret)
	return err == nil
}
