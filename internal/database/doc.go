// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── books/           # Catalog records
//	├── members/         # Member registry
//	├── loans/           # Circulation ledger
//	└── notifications/   # Notification outbox
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./openshelf.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	loansRepo := loans.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.FindByTitle("Dune")
//
// # Interface Implementations
//
//   - books.Repository: implements catalog.BookRepository
//
// Compile-time checks live next to each implementation:
//
//	var _ catalog.BookRepository = (*Repository)(nil)
package database
