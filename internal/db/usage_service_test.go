package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagestreak/pagestreak/internal/models"
)

func TestRecordOpenAndLastOpenedAt(t *testing.T) {
	store := newTestStore(t)

	last, err := store.LastOpenedAt()
	require.NoError(t, err)
	assert.Nil(t, last)

	first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.Local)
	require.NoError(t, store.RecordOpen("2026-01-10", first))

	// A later open on the same day overwrites the anchor
	second := first.Add(9 * time.Hour)
	require.NoError(t, store.RecordOpen("2026-01-10", second))

	last, err = store.LastOpenedAt()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, second, *last, time.Second)
}

func TestRecordCloseWithoutOpen(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, 1, 10, 22, 0, 0, 0, time.Local)
	require.NoError(t, store.RecordClose("2026-01-10", now))

	var usage models.AppUsage
	require.NoError(t, store.db.Where("day = ?", "2026-01-10").First(&usage).Error)
	assert.Nil(t, usage.OpenedAt)
	require.NotNil(t, usage.ClosedAt)
}

func TestSetPendingReminderKeepsSingleRow(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 1, 10, 18, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.SetPendingReminder(models.Reminder{
			FireAt: now.Add(time.Duration(i) * time.Hour),
			Title:  "Time to read",
		}))
	}

	var count int64
	require.NoError(t, store.db.Model(&models.Reminder{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	pending, err := store.PendingReminder()
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.WithinDuration(t, now.Add(2*time.Hour), pending.FireAt, time.Second)
}

func TestClearPendingReminderIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Clearing with nothing pending is not an error
	require.NoError(t, store.ClearPendingReminder())

	require.NoError(t, store.SetPendingReminder(models.Reminder{
		FireAt: time.Now().Add(time.Hour),
		Title:  "Time to read",
	}))
	require.NoError(t, store.ClearPendingReminder())
	require.NoError(t, store.ClearPendingReminder())

	pending, err := store.PendingReminder()
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestDueReminders(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 1, 10, 18, 0, 0, 0, time.Local)

	require.NoError(t, store.SetPendingReminder(models.Reminder{
		FireAt: now.Add(time.Hour),
		Title:  "Time to read",
	}))

	due, err := store.DueReminders(now)
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = store.DueReminders(now.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Len(t, due, 1)
}
