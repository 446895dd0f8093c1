package cookie

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"petportrait-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "session_token"
	CSRFCookieName    = "csrf_token"
	CSRFHeaderName    = "X-CSRF-Token"
)

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func GetCSRFCookie(c *gin.Context) string {
	token, _ := c.Cookie(CSRFCookieName)
	return token
}

// EnsureCSRFCookie issues the double-submit token when the client has none.
// Readable by JS on purpose (not HttpOnly): the frontend echoes it back in the
// X-CSRF-Token header on mutating requests.
func EnsureCSRFCookie(c *gin.Context, cfg config.SessionConfig) string {
	if existing := GetCSRFCookie(c); existing != "" {
		return existing
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	token := hex.EncodeToString(buf)

	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		CSRFCookieName,
		token,
		0, // session cookie
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		false,
	)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
