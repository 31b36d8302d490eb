package middleware

import (
	"strings"

	"agenda-espacos/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxTokenKey    = "bearer_token"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// IdentityMiddleware captures the caller's bearer token and, when the
// token parses, the identity claims inside it. It never aborts:
// authorization belongs to the backend the token is forwarded to, the
// claims here only pick listing defaults.
type IdentityMiddleware struct {
	reader *jwt.Reader
}

func NewIdentityMiddleware(reader *jwt.Reader) *IdentityMiddleware {
	return &IdentityMiddleware{reader: reader}
}

func (m *IdentityMiddleware) CaptureIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		c.Set(ctxTokenKey, token)

		claims, err := m.reader.Read(token)
		if err != nil {
			// Unreadable token still gets forwarded; the backend decides.
			c.Next()
			return
		}

		if claims.UserID != uuid.Nil {
			c.Set(ctxUserIDKey, claims.UserID)
		}
		if claims.Role != "" {
			c.Set(ctxUserRoleKey, claims.Role)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetToken returns the raw bearer token captured for this request.
func GetToken(c *gin.Context) string {
	if token, exists := c.Get(ctxTokenKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (string, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(string)
	return role, ok
}
