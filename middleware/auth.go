package middleware

import (
	"net/http"
	"strings"

	"sihati/models"
	"sihati/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys under which the verified caller identity is stored. Handlers
// read these and pass the identity explicitly into the services; no service
// ever reads ambient auth state.
const (
	ContextCallerID   = "callerID"
	ContextCallerRole = "callerRole"
)

// JWTAuthMiddleware verifies the bearer token, rejects revoked tokens, and
// stores the caller identity in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		id, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			logger.Warn("rejected invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if utils.IsTokenRevoked(c.Request.Context(), tokenString) {
			logger.Warn("rejected revoked token", zap.String("subject", id))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has been revoked"})
			return
		}

		c.Set(ContextCallerID, id)
		c.Set(ContextCallerRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextCallerRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// RequireDoctor gates a route group to doctor accounts.
func RequireDoctor() gin.HandlerFunc {
	return RequireRole(models.RoleDoctor)
}

// RequirePatient gates a route group to patient accounts.
func RequirePatient() gin.HandlerFunc {
	return RequireRole(models.RolePatient)
}
