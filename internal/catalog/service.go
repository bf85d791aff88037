// Package catalog implements the circulation desk: adding copies to the
// catalog, borrowing and returning them, and listing what is available.
//
// The service holds no state of its own; books, member validity and
// notification delivery are supplied as capability interfaces so tests can
// substitute doubles.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openshelf/openshelf/internal/entities"
)

var (
	// ErrTitleRequired is returned by AddBook for an empty or all-whitespace title.
	ErrTitleRequired = errors.New("book title is required")

	// ErrInvalidCopyCount is returned by AddBook for a non-positive copy count.
	ErrInvalidCopyCount = errors.New("copies to add must be positive")

	// ErrMemberNotEligible is returned by BorrowBook when the member directory
	// rejects the member. Callers must resolve membership before retrying.
	ErrMemberNotEligible = errors.New("member is not eligible to borrow")
)

// Service orchestrates catalog operations over injected collaborators.
type Service struct {
	books    BookRepository
	members  MemberDirectory
	notifier NotificationSink
}

// NewService creates a catalog service.
func NewService(books BookRepository, members MemberDirectory, notifier NotificationSink) *Service {
	return &Service{
		books:    books,
		members:  members,
		notifier: notifier,
	}
}

// AddBook registers copies of a title. A new record is created for an unknown
// title; an existing record keeps its identity and gains copies.
func (s *Service) AddBook(title string, copies int) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if copies <= 0 {
		return ErrInvalidCopyCount
	}

	book, err := s.books.FindByTitle(title)
	if err != nil {
		return fmt.Errorf("failed to look up book %q: %w", title, err)
	}

	if book == nil {
		book = &entities.Book{Title: title, Copies: copies}
	} else {
		book.Copies += copies
	}

	if err := s.books.Save(book); err != nil {
		return fmt.Errorf("failed to save book %q: %w", title, err)
	}
	return nil
}

// BorrowBook lends one copy of a title to a member. It reports false when the
// title is unknown or no copies are available; member eligibility is checked
// before the catalog is consulted.
func (s *Service) BorrowBook(memberID uint, title string) (bool, error) {
	valid, err := s.members.IsValid(memberID)
	if err != nil {
		return false, fmt.Errorf("failed to validate member %d: %w", memberID, err)
	}
	if !valid {
		return false, ErrMemberNotEligible
	}

	book, err := s.books.FindByTitle(title)
	if err != nil {
		return false, fmt.Errorf("failed to look up book %q: %w", title, err)
	}
	if book == nil || book.Copies == 0 {
		return false, nil
	}

	book.Copies--
	if err := s.books.Save(book); err != nil {
		return false, fmt.Errorf("failed to save book %q: %w", title, err)
	}

	s.notifier.NotifyBorrow(memberID, title)
	return true, nil
}

// ReturnBook takes one copy of a title back from a member. Member validity is
// deliberately not checked: a lapsed member can still hand a book in.
func (s *Service) ReturnBook(memberID uint, title string) (bool, error) {
	book, err := s.books.FindByTitle(title)
	if err != nil {
		return false, fmt.Errorf("failed to look up book %q: %w", title, err)
	}
	if book == nil {
		return false, nil
	}

	book.Copies++
	if err := s.books.Save(book); err != nil {
		return false, fmt.Errorf("failed to save book %q: %w", title, err)
	}

	s.notifier.NotifyReturn(memberID, title)
	return true, nil
}

// GetAvailableBooks lists catalog records with at least one copy on the shelf,
// in the repository's listing order. The result is never nil.
func (s *Service) GetAvailableBooks() ([]entities.Book, error) {
	all, err := s.books.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	available := make([]entities.Book, 0, len(all))
	for _, book := range all {
		if book.Copies > 0 {
			available = append(available, book)
		}
	}
	return available, nil
}
