package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	apierrors "github.com/openhire/job-board-api/internal/errors"
	"github.com/openhire/job-board-api/internal/models"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if role := session.Get(constants.ContextKeyUserRole); role != nil {
			c.Set(constants.ContextKeyUserRole, role)
		}
		c.Next()
	}
}

// LoadIdentity copies the session identity into the request context when one
// exists, without requiring it. Public routes use it so handlers can vary
// their output for an authenticated viewer.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID := session.Get(constants.ContextKeyUserID); userID != nil {
			c.Set(constants.ContextKeyUserID, userID)
			if role := session.Get(constants.ContextKeyUserRole); role != nil {
				c.Set(constants.ContextKeyUserRole, role)
			}
		}
		c.Next()
	}
}

// RequireRole aborts unless the session role matches. The role is fixed at
// registration, so the session copy is authoritative.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetUserRole(c)
		if !ok || current != role {
			switch role {
			case models.RoleSeeker:
				apierrors.RoleRequired(c, "Only job seekers can perform this action")
			default:
				apierrors.RoleRequired(c, "Only employers can perform this action")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserRole retrieves the current user role from context
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	role, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return "", false
	}

	switch v := role.(type) {
	case models.UserRole:
		return v, true
	case string:
		return models.UserRole(v), true
	default:
		return "", false
	}
}
