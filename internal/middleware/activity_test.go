package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	"github.com/stretchr/testify/require"
)

// activityTestRouter wires a seed endpoint that writes an arbitrary
// last-activity stamp into the session, plus a protected endpoint behind
// the inactivity check.
func activityTestRouter(timeout time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.ContextKeyUserID, uint64(1))
		session.Set(constants.ContextKeyUserRole, "seeker")
		if stamp := c.Query("last_activity"); stamp != "" {
			session.Set(constants.SessionKeyLastActivity, stamp)
		}
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	r.Use(SessionActivity(timeout))

	handler := func(c *gin.Context) {
		session := sessions.Default(c)
		stamp, _ := session.Get(constants.SessionKeyLastActivity).(string)
		c.JSON(http.StatusOK, gin.H{"last_activity": stamp})
	}
	r.GET("/protected", RequireAuth(), handler)
	r.GET("/static/app.js", handler)
	r.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "public"})
	})

	return r
}

func seedSession(t *testing.T, r *gin.Engine, lastActivity string) []*http.Cookie {
	t.Helper()

	url := "/seed"
	if lastActivity != "" {
		url += "?last_activity=" + lastActivity
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func getWithCookies(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSessionActivity_ExpiresAfterTimeout(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	stale := time.Now().Add(-1801 * time.Second).Format(time.RFC3339)
	cookies := seedSession(t, r, stale)

	w := getWithCookies(r, "/protected", cookies)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "SESSION_EXPIRED", response.Code)

	// The session was cleared, so the replayed cookie no longer
	// authenticates even with a fresh stamp window.
	w = getWithCookies(r, "/protected", append(cookies, w.Result().Cookies()...))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionActivity_SurvivesWithinTimeout(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	recent := time.Now().Add(-1799 * time.Second).Format(time.RFC3339)
	cookies := seedSession(t, r, recent)

	w := getWithCookies(r, "/protected", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// The stamp advanced past the seeded value.
	var response struct {
		LastActivity string `json:"last_activity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	stamp, err := time.Parse(time.RFC3339, response.LastActivity)
	require.NoError(t, err)
	require.True(t, time.Since(stamp) < time.Minute)
}

func TestSessionActivity_MalformedStampFailsOpen(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	cookies := seedSession(t, r, "not-a-timestamp")

	w := getWithCookies(r, "/protected", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// The bad stamp was replaced with a parseable one.
	var response struct {
		LastActivity string `json:"last_activity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	_, err := time.Parse(time.RFC3339, response.LastActivity)
	require.NoError(t, err)
}

func TestSessionActivity_MissingStampFailsOpen(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	cookies := seedSession(t, r, "")

	w := getWithCookies(r, "/protected", cookies)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionActivity_StaticPathBypassesCheck(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	stale := time.Now().Add(-3 * time.Hour).Format(time.RFC3339)
	cookies := seedSession(t, r, stale)

	w := getWithCookies(r, "/static/app.js", cookies)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionActivity_UnauthenticatedPassesThrough(t *testing.T) {
	r := activityTestRouter(1800 * time.Second)

	w := getWithCookies(r, "/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
