// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Capability Interfaces (internal/catalog/interfaces.go)
//
//   - catalog.BookRepository: Catalog record lookup and persistence
//   - catalog.MemberDirectory: Member validity checks
//   - catalog.NotificationSink: Borrow/return notice delivery
//
// The catalog service depends only on these three interfaces; every concrete
// collaborator (gorm repositories, the members service, the outbox-backed
// notification sink) can be substituted with a test double.
//
// ## Task Interfaces (internal/tasks)
//
//   - tasks.NoticeStore: Outbox access for notice delivery
//   - tasks.LedgerCleaner: Ledger retention cleanup
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., reservations):
//
//  1. Create sub-package: internal/database/reservations/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ ReservationStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
