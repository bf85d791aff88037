package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// LedgerCleaner provides the ability to delete old circulation ledger events.
type LedgerCleaner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// CleanupLedgerTask removes loan events older than the configured retention period.
type CleanupLedgerTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for ledger cleanup tasks.
func (t CleanupLedgerTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_ledger",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupLedgerProcessor creates a processor function for CleanupLedgerTask.
func CleanupLedgerProcessor(cleaner LedgerCleaner) backlite.QueueProcessor[CleanupLedgerTask] {
	return func(ctx context.Context, task CleanupLedgerTask) error {
		if cleaner == nil {
			return fmt.Errorf("ledger cleaner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := cleaner.DeleteOldEvents(retention)
		if err != nil {
			return fmt.Errorf("cleanup ledger: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d loan events older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewCleanupLedgerQueue creates a backlite queue for ledger cleanup tasks.
func NewCleanupLedgerQueue(cleaner LedgerCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupLedgerProcessor(cleaner))
}
