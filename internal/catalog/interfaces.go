package catalog

import "github.com/openshelf/openshelf/internal/entities"

// BookRepository provides persistence for catalog records.
// FindByTitle returns (nil, nil) when no record matches the title.
type BookRepository interface {
	FindByTitle(title string) (*entities.Book, error)
	Save(book *entities.Book) error
	ListAll() ([]entities.Book, error)
}

// MemberDirectory answers whether a member is currently allowed to borrow.
type MemberDirectory interface {
	IsValid(memberID uint) (bool, error)
}

// NotificationSink receives borrow/return notices. Delivery is fire-and-forget
// from the service's point of view; implementations handle their own failures.
type NotificationSink interface {
	NotifyBorrow(memberID uint, title string)
	NotifyReturn(memberID uint, title string)
}
