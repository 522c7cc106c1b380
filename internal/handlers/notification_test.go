package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"github.com/openhire/job-board-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type notificationTestEnv struct {
	db      *gorm.DB
	handler *NotificationHandler
}

func setupNotificationTestEnv(t *testing.T) notificationTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Notification{}))

	noteRepo := repository.NewNotificationRepository(db)
	notificationService := services.NewNotificationService(noteRepo)

	gin.SetMode(gin.TestMode)
	return notificationTestEnv{
		db:      db,
		handler: NewNotificationHandler(notificationService),
	}
}

func (env notificationTestEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleSeeker,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env notificationTestEnv) markRead(userID, notificationID uint64) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notificationID), nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(notificationID)}}
	c.Set(constants.ContextKeyUserID, userID)

	env.handler.MarkRead(c)
	return w
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	env := setupNotificationTestEnv(t)
	user := env.createUser(t, "sam")

	note := &models.Notification{UserID: user.ID, Message: "Your application moved to shortlisted."}
	require.NoError(t, env.db.Create(note).Error)

	w := env.markRead(user.ID, note.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Notification
	require.NoError(t, env.db.First(&stored, note.ID).Error)
	require.True(t, stored.IsRead)
}

func TestNotificationHandler_MarkReadNonexistent(t *testing.T) {
	env := setupNotificationTestEnv(t)
	user := env.createUser(t, "sam")

	w := env.markRead(user.ID, 9999)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_MarkReadOtherUsers(t *testing.T) {
	env := setupNotificationTestEnv(t)
	owner := env.createUser(t, "sam")
	other := env.createUser(t, "pat")

	note := &models.Notification{UserID: owner.ID, Message: "Your application moved to accepted."}
	require.NoError(t, env.db.Create(note).Error)

	w := env.markRead(other.ID, note.ID)
	require.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Notification
	require.NoError(t, env.db.First(&stored, note.ID).Error)
	require.False(t, stored.IsRead)
}
