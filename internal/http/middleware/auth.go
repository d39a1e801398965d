package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/epicircle/scrap-pickups/internal/model"
)

const (
	principalKey = "principal"
	tokenKey     = "access_token"
)

type TokenParser interface {
	Parse(token string) (model.Principal, error)
}

// SessionChecker rejects tokens whose session was ended by logout.
type SessionChecker interface {
	Authorize(ctx context.Context, principal model.Principal, token string) error
}

func Auth(parser TokenParser, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			return
		}
		token := strings.TrimSpace(parts[1])

		principal, err := parser.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if err := sessions.Authorize(c.Request.Context(), principal, token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session has ended"})
			return
		}

		c.Set(principalKey, principal)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireRole lets through only principals with the given role.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
		c.Next()
	}
}

// MustPrincipal returns the authenticated principal or aborts with 401.
func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if exists {
		if principal, ok := value.(model.Principal); ok {
			return principal, true
		}
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	return model.Principal{}, false
}
