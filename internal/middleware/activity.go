package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	apierrors "github.com/openhire/job-board-api/internal/errors"
)

// activitySkipPrefixes lists paths exempt from the inactivity check.
var activitySkipPrefixes = []string{"/static/", "/media/", "/health"}

// SessionActivity enforces the inactivity window on authenticated requests.
// If more than timeout has passed since the stored last-activity stamp, the
// session is invalidated and the request rejected; otherwise the stamp
// advances to now. A missing or malformed stamp fails open: the request
// proceeds and gets a fresh stamp. Unauthenticated requests pass through.
func SessionActivity(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range activitySkipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		session := sessions.Default(c)
		if session.Get(constants.ContextKeyUserID) == nil {
			c.Next()
			return
		}

		if raw, ok := session.Get(constants.SessionKeyLastActivity).(string); ok {
			lastActivity, err := time.Parse(time.RFC3339, raw)
			if err == nil && time.Since(lastActivity) > timeout {
				session.Clear()
				if err := session.Save(); err != nil {
					apierrors.InternalError(c, "Failed to clear session")
					c.Abort()
					return
				}
				apierrors.SessionExpired(c)
				c.Abort()
				return
			}
		}

		session.Set(constants.SessionKeyLastActivity, time.Now().Format(time.RFC3339))
		if err := session.Save(); err != nil {
			apierrors.InternalError(c, "Failed to save session")
			c.Abort()
			return
		}

		c.Next()
	}
}
