package constants

// Session and context keys
const (
	SessionCookieName      = "jobboard_session"
	ContextKeyUserID       = "user_id"
	ContextKeyUserRole     = "user_role"
	SessionKeyLastActivity = "last_activity"
)

// Validation limits
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultSessionTimeoutSeconds is the inactivity window after which a
// session is invalidated (30 minutes).
const DefaultSessionTimeoutSeconds = 1800

// RecentJobsLimit caps the home page job listing.
const RecentJobsLimit = 6
