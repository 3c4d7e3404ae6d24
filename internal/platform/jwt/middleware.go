package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sweetshop_backend/internal/feature/auth/domain/entity"
)

// Gin context keys for the identity resolved from the access token.
// They are set by AuthRequired and consumed by downstream handlers.
const (
	ContextSubject = "authSubject"
	ContextRole    = "authRole"
)

// AuthRequired returns a Gin middleware that validates the bearer token and
// restricts access to authenticated users only. On success the decoded
// subject and role are attached to the request context; every failure mode
// (missing header, malformed token, bad signature, expiry) collapses to 401.
func AuthRequired(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := codec.Decode(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole returns a Gin middleware that rejects requests whose resolved
// role does not satisfy required. It must run after AuthRequired; a request
// with no resolved role is treated as unauthenticated, not forbidden.
func RequireRole(required entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ContextRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		role, ok := v.(entity.Role)
		if !ok || !role.Includes(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// SubjectFromContext returns the authenticated subject (email) attached by
// AuthRequired, if any.
func SubjectFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextSubject)
	if !ok {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
