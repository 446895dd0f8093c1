package middleware

import (
	"crypto/subtle"
	"net/http"

	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// CSRF enforces the double-submit pair on mutating requests: the csrf_token
// cookie must match the X-CSRF-Token header. Safe methods pass through and get
// a token issued so the frontend always has one to echo.
func CSRF(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			cookie.EnsureCSRFCookie(c, cfg)
			c.Next()
			return
		}

		cookieToken := cookie.GetCSRFCookie(c)
		headerToken := c.GetHeader(cookie.CSRFHeaderName)
		if cookieToken == "" || headerToken == "" ||
			subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "CSRF_MISMATCH", "message": "CSRF token missing or mismatched"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
