package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Decision is the outcome of evaluating a request against the admin gate.
type Decision struct {
	Allow      bool
	Status     int
	RedirectTo string
}

var allow = Decision{Allow: true}

// Decide evaluates the gate for a request path. API routes answer with
// JSON 401, page routes redirect. The login page inverts: an
// authenticated visitor is sent back to the dashboard.
func Decide(authed bool, path string) Decision {
	isAdminAPI := strings.HasPrefix(path, "/api/admin")
	isAdminPage := path == "/admin" || strings.HasPrefix(path, "/admin/")
	isLoginPage := path == "/admin/login"

	if !authed {
		if isAdminAPI {
			return Decision{Status: http.StatusUnauthorized}
		}
		if isAdminPage && !isLoginPage {
			return Decision{Status: http.StatusTemporaryRedirect, RedirectTo: "/admin/login"}
		}
		return allow
	}

	if isLoginPage {
		return Decision{Status: http.StatusTemporaryRedirect, RedirectTo: "/admin"}
	}

	return allow
}

// AdminGate guards /admin pages and /api/admin routes before any route
// logic runs. The resolver decides whether the request carries a valid
// session.
func AdminGate(resolver func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := Decide(resolver(c), c.Request.URL.Path)
		if d.Allow {
			c.Next()
			return
		}

		if d.RedirectTo != "" {
			c.Redirect(d.Status, d.RedirectTo)
			c.Abort()
			return
		}

		c.JSON(d.Status, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}
