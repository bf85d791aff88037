// Package notifications provides database operations for the notification outbox.
package notifications

import (
	"time"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create writes a pending outbox row.
func (r *Repository) Create(notification *entities.Notification) error {
	if notification.Status == "" {
		notification.Status = entities.NotificationStatusPending
	}
	return r.db.Create(notification).Error
}

// GetByID retrieves an outbox row.
func (r *Repository) GetByID(id uint) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkSent records successful delivery of an outbox row.
func (r *Repository) MarkSent(id uint) error {
	now := time.Now()
	return r.db.Model(&entities.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": entities.NotificationStatusSent, "sent_at": &now}).Error
}

// CountPending reports how many outbox rows still await delivery.
func (r *Repository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Notification{}).
		Where("status = ?", entities.NotificationStatusPending).
		Count(&count).Error
	return count, err
}
