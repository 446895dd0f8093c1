package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petportrait-checkout/internal/pkg/cookie"
	"petportrait-checkout/internal/pkg/sessions"
	"petportrait-checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions *sessions.Service
}

const ctxActorKey = "actor"

func NewAuthMiddleware(sessionService *sessions.Service) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessionService}
}

// RequireAuth validates the session token from the session cookie or a bearer
// header and stores the actor on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHENTICATED", "message": "Session required"},
			})
			c.Abort()
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			slog.Warn("session validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHENTICATED", "message": "Invalid or expired session"},
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, claimsToActor(claims))
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid session is present but never
// rejects: guest checkout flows through here.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := m.sessions.ValidateToken(token); err == nil {
				c.Set(ctxActorKey, claimsToActor(claims))
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func claimsToActor(claims *sessions.Claims) usecase.Actor {
	return usecase.Actor{
		UserID: claims.UserID,
		Email:  claims.Email,
		Admin:  sessions.Role(claims.Role) == sessions.RoleAdmin,
	}
}

// GetActor returns the authenticated actor; the zero actor (ok=false) is an
// anonymous guest.
func GetActor(c *gin.Context) (usecase.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return usecase.Actor{}, false
	}
	actor, ok := v.(usecase.Actor)
	return actor, ok
}
