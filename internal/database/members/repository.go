// Package members provides database operations for the member registry.
//
// # Usage
//
//	repo := members.NewRepository(db)
//	member, err := repo.GetByID(42)
package members

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/entities"
)

// Repository handles all member database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new members repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new member record.
func (r *Repository) Create(member *entities.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID. Returns (nil, nil) when no member exists.
func (r *Repository) GetByID(id uint) (*entities.Member, error) {
	var member entities.Member
	err := r.db.First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email.
func (r *Repository) GetByEmail(email string) (*entities.Member, error) {
	var member entities.Member
	err := r.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateStatus changes a member's status.
func (r *Repository) UpdateStatus(id uint, status entities.MemberStatus) error {
	result := r.db.Model(&entities.Member{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
