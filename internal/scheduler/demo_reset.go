package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// DemoResetScheduler periodically wipes the demo store and loads the seed
// catalogue again, undoing whatever visitors changed.
type DemoResetScheduler struct {
	store    *bookstore.Store
	seed     []entities.CreateBookRequest
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	lastRun    time.Time
	cancelFunc context.CancelFunc
}

// NewDemoResetScheduler creates a new scheduler instance
func NewDemoResetScheduler(store *bookstore.Store, seed []entities.CreateBookRequest, schedule string) *DemoResetScheduler {
	return &DemoResetScheduler{
		store:    store,
		seed:     seed,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start registers the reset job and starts the cron loop. The scheduler
// stops on its own when ctx is cancelled.
func (s *DemoResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule demo reset job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule, time.Now())
	log.Printf("Demo reset scheduler: started with schedule '%s' (%s). Next run: %v",
		s.schedule,
		GetCronDescription(s.schedule),
		nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a reset in progress.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)

	if cancel != nil {
		cancel()
	}

	log.Printf("Demo reset scheduler: stopped")
}

// RunNow resets the store synchronously.
func (s *DemoResetScheduler) RunNow() demo.SeedResult {
	result := demo.Reset(s.store, s.seed)

	s.mu.Lock()
	s.lastRun = time.Now()
	s.mu.Unlock()

	return result
}

// IsRunning returns whether the scheduler is active
func (s *DemoResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastRun returns when the store was last reset, zero if never.
func (s *DemoResetScheduler) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// GetNextRunTime returns when the next reset will occur
func (s *DemoResetScheduler) GetNextRunTime() *time.Time {
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
