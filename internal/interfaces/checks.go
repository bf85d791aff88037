package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/openshelf/openshelf/internal/catalog"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/database/loans"
	"github.com/openshelf/openshelf/internal/database/notifications"
	"github.com/openshelf/openshelf/internal/members"
	notificationSink "github.com/openshelf/openshelf/internal/notifications"
	"github.com/openshelf/openshelf/internal/tasks"
)

// =============================================================================
// Catalog Collaborators
// =============================================================================

// BookRepository implementations
var _ catalog.BookRepository = (*books.Repository)(nil)

// MemberDirectory implementations
var _ catalog.MemberDirectory = (*members.Service)(nil)

// NotificationSink implementations
var _ catalog.NotificationSink = (*notificationSink.Service)(nil)

// =============================================================================
// Task Queue Collaborators
// =============================================================================

// NoticeStore implementations
var _ tasks.NoticeStore = (*notifications.Repository)(nil)

// LedgerCleaner implementations
var _ tasks.LedgerCleaner = (*loans.Repository)(nil)
