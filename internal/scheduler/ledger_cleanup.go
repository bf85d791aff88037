// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/openshelf/openshelf/internal/tasks"
)

// LedgerCleanupScheduler periodically enqueues a ledger cleanup task so the
// circulation ledger does not grow without bound.
type LedgerCleanupScheduler struct {
	taskClient    *tasks.Client
	schedule      string
	retentionDays int

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewLedgerCleanupScheduler creates a new scheduler instance.
func NewLedgerCleanupScheduler(taskClient *tasks.Client, schedule string, retentionDays int) *LedgerCleanupScheduler {
	return &LedgerCleanupScheduler{
		taskClient:    taskClient,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *LedgerCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.enqueueCleanup)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("Ledger cleanup scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to complete.
func (s *LedgerCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	log.Printf("Ledger cleanup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *LedgerCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next cleanup will be enqueued.
func (s *LedgerCleanupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *LedgerCleanupScheduler) enqueueCleanup() {
	if _, err := s.taskClient.Add(tasks.CleanupLedgerTask{RetentionDays: s.retentionDays}).Save(); err != nil {
		log.Printf("Ledger cleanup: failed to enqueue task: %v", err)
	}
}
