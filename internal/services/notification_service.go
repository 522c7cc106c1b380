package services

import (
	"errors"
	"fmt"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"gorm.io/gorm"
)

// ErrNotificationNotFound is returned when the notification does not exist
// or belongs to another user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService exposes a user's in-app notifications.
type NotificationService struct {
	noteRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(noteRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{noteRepo: noteRepo}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(userID uint64) ([]models.Notification, error) {
	notifications, err := s.noteRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID uint64) error {
	if err := s.noteRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
