package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var testSeed = []entities.CreateBookRequest{
	{Title: "Dune", Author: "Frank Herbert", Year: 1965},
	{Title: "Emma", Author: "Jane Austen", Year: 1815},
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("*/15 * * * *"))
	assert.NoError(t, ValidateCronSchedule("0 0 * * 0"))
	assert.Error(t, ValidateCronSchedule("every minute"))
	assert.Error(t, ValidateCronSchedule("* * * *"))
}

func TestGetCronDescription(t *testing.T) {
	assert.Equal(t, "Every 15 minutes", GetCronDescription("*/15 * * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * *", GetCronDescription("5 4 * * *"))
}

func TestGetNextRunTime(t *testing.T) {
	from := time.Date(2024, time.March, 10, 10, 7, 0, 0, time.UTC)

	next, err := GetNextRunTime("*/15 * * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 10, 15, 0, 0, time.UTC), *next)

	_, err = GetNextRunTime("bogus", from)
	assert.Error(t, err)
}

func TestDemoResetScheduler_RunNow(t *testing.T) {
	store := bookstore.New()
	_, err := store.Create(entities.CreateBookRequest{Title: "Visitor Book", Author: "Visitor", Year: 2020})
	require.NoError(t, err)

	s := NewDemoResetScheduler(store, testSeed, "*/15 * * * *")
	assert.True(t, s.LastRun().IsZero())

	result := s.RunNow()

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, store.Count())
	assert.Empty(t, store.FindByTitle("Visitor"))
	assert.False(t, s.LastRun().IsZero())
}

func TestDemoResetScheduler_StartStop(t *testing.T) {
	store := bookstore.New()
	s := NewDemoResetScheduler(store, testSeed, "*/15 * * * *")

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.NotNil(t, s.GetNextRunTime())

	// Starting twice is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())

	// Stopping twice is a no-op
	s.Stop()
}

func TestDemoResetScheduler_StopsOnContextCancel(t *testing.T) {
	store := bookstore.New()
	s := NewDemoResetScheduler(store, testSeed, "*/15 * * * *")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestDemoResetScheduler_InvalidSchedule(t *testing.T) {
	s := NewDemoResetScheduler(bookstore.New(), testSeed, "not a schedule")

	err := s.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
	assert.False(t, s.IsRunning())
}
