// Package books provides database operations for catalog records.
//
// This package implements the catalog.BookRepository interface:
//
//	var _ catalog.BookRepository = (*Repository)(nil)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/catalog"
	"github.com/openshelf/openshelf/internal/entities"
)

// Repository handles catalog record database operations.
type Repository struct {
	db *gorm.DB
}

var _ catalog.BookRepository = (*Repository)(nil)

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByTitle retrieves a catalog record by its title.
// Returns (nil, nil) when no record matches.
func (r *Repository) FindByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("title = ?", title).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Save persists a catalog record, creating it when it has no ID yet and
// updating it in place otherwise.
func (r *Repository) Save(book *entities.Book) error {
	return r.db.Save(book).Error
}

// ListAll returns every catalog record ordered by title; the ordering keeps
// availability listings stable between calls.
func (r *Repository) ListAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("title ASC").Find(&books).Error
	return books, err
}
