// Package loans provides database operations for the circulation ledger.
package loans

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

// Record saves a ledger event.
func (r *Repository) Record(event *entities.LoanEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// ListByMember retrieves ledger events for a member, most recent first.
func (r *Repository) ListByMember(memberID uint, limit int) ([]entities.LoanEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	var events []entities.LoanEvent
	err := r.db.Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// DeleteOldEvents removes ledger events older than the retention period and
// reports how many rows were deleted.
func (r *Repository) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.LoanEvent{})
	return result.RowsAffected, result.Error
}
