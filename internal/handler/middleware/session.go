package middleware

import (
	"log/slog"
	"strings"

	"runesse/internal/domain/user"
	"runesse/internal/pkg/cookie"
	"runesse/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionEmailKey = "session_email"
	ctxSessionRoleKey  = "session_role"
)

type SessionMiddleware struct {
	resolver usecase.SessionResolver
}

func NewSessionMiddleware(resolver usecase.SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		resolver: resolver,
	}
}

// OptionalSession attaches the caller identity when a valid token is present.
// Missing or invalid tokens leave the request anonymous.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.Next()
			return
		}

		identity, err := m.resolver.Resolve(token)
		if err != nil {
			slog.Debug("ignoring invalid session token", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxSessionEmailKey, identity.Email.Value())
		c.Set(ctxSessionRoleKey, identity.Role)
		c.Next()
	}
}

func GetSessionEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func GetSessionRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxSessionRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
