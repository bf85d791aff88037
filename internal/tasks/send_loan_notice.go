package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/openshelf/openshelf/internal/entities"
)

// NoticeStore provides access to pending outbox rows.
type NoticeStore interface {
	GetByID(id uint) (*entities.Notification, error)
	MarkSent(id uint) error
}

// SendLoanNoticeTask delivers one queued borrow/return notice.
type SendLoanNoticeTask struct {
	NotificationID uint `json:"notification_id"`
}

// Config returns the queue configuration for loan notice delivery.
func (t SendLoanNoticeTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "send_loan_notice",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SendLoanNoticeProcessor creates a processor function for SendLoanNoticeTask.
// Delivery is a log line; swapping in email or push delivery only means
// changing this processor.
func SendLoanNoticeProcessor(store NoticeStore) backlite.QueueProcessor[SendLoanNoticeTask] {
	return func(ctx context.Context, task SendLoanNoticeTask) error {
		if store == nil {
			return fmt.Errorf("notice store not configured")
		}

		notification, err := store.GetByID(task.NotificationID)
		if err != nil {
			return fmt.Errorf("load notice %d: %w", task.NotificationID, err)
		}
		if notification.Status == entities.NotificationStatusSent {
			return nil
		}

		log.Printf("[TASK] Notice to member %d: %s of %q",
			notification.MemberID, notification.Kind, notification.BookTitle)

		if err := store.MarkSent(notification.ID); err != nil {
			return fmt.Errorf("mark notice %d sent: %w", notification.ID, err)
		}
		return nil
	}
}

// NewSendLoanNoticeQueue creates a backlite queue for loan notice delivery.
func NewSendLoanNoticeQueue(store NoticeStore) backlite.Queue {
	return backlite.NewQueue(SendLoanNoticeProcessor(store))
}
