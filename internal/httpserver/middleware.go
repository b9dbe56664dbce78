package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type ctxKey string

const identityCtxKey ctxKey = "identity"

type identityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

// authMiddleware resolves the bearer token into an identity and stores
// it on the request context.
func authMiddleware(identities identityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		identity, err := identities.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), identityCtxKey, identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// adminMiddleware gates a route group to the configured admin user.
// It must run after authMiddleware.
func adminMiddleware(adminUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFrom(c)
		if adminUserID == "" || identity.UserID != adminUserID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	identity, _ := c.Request.Context().Value(identityCtxKey).(domain.Identity)
	return identity
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
