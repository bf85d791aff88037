package loans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/entities"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.LoanEvent{})
	require.NoError(t, err)

	return NewRepository(db)
}

func TestRepository_Record(t *testing.T) {
	repo := setupTestRepo(t)

	event := &entities.LoanEvent{
		MemberID:  42,
		BookTitle: "Dune",
		Action:    entities.LoanActionBorrow,
	}
	require.NoError(t, repo.Record(event))
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_ListByMember(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Record(&entities.LoanEvent{
		MemberID:  42,
		BookTitle: "Dune",
		Action:    entities.LoanActionBorrow,
		CreatedAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.Record(&entities.LoanEvent{
		MemberID:  42,
		BookTitle: "Dune",
		Action:    entities.LoanActionReturn,
	}))
	require.NoError(t, repo.Record(&entities.LoanEvent{
		MemberID:  7,
		BookTitle: "Solaris",
		Action:    entities.LoanActionBorrow,
	}))

	events, err := repo.ListByMember(42, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Most recent first.
	assert.Equal(t, entities.LoanActionReturn, events[0].Action)
	assert.Equal(t, entities.LoanActionBorrow, events[1].Action)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Record(&entities.LoanEvent{
		MemberID:  42,
		BookTitle: "Dune",
		Action:    entities.LoanActionBorrow,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.Record(&entities.LoanEvent{
		MemberID:  42,
		BookTitle: "Dune",
		Action:    entities.LoanActionReturn,
	}))

	deleted, err := repo.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, err := repo.ListByMember(42, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, entities.LoanActionReturn, events[0].Action)
}
