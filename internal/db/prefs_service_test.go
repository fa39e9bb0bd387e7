package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagestreak/pagestreak/internal/models"
)

func TestGetPreferencesCreatesDefaults(t *testing.T) {
	store := newTestStore(t)

	prefs, err := store.GetPreferences()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultDailyGoalMinutes, prefs.DailyGoalMinutes)
	assert.Equal(t, models.DefaultReminderHours, prefs.ReminderHours)
	assert.True(t, prefs.NotificationsEnabled)

	// Second read returns the same singleton row
	again, err := store.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs.ID, again.ID)
}

func TestSetDailyGoal(t *testing.T) {
	store := newTestStore(t)

	prefs, err := store.SetDailyGoal(45)
	require.NoError(t, err)
	assert.Equal(t, 45, prefs.DailyGoalMinutes)

	got, err := store.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, 45, got.DailyGoalMinutes)

	_, err = store.SetDailyGoal(0)
	assert.Error(t, err)
	_, err = store.SetDailyGoal(-10)
	assert.Error(t, err)
}

func TestSetReminderHours(t *testing.T) {
	store := newTestStore(t)

	prefs, err := store.SetReminderHours(6)
	require.NoError(t, err)
	assert.Equal(t, 6, prefs.ReminderHours)

	_, err = store.SetReminderHours(0)
	assert.Error(t, err)
}

func TestSetNotificationsEnabled(t *testing.T) {
	store := newTestStore(t)

	prefs, err := store.SetNotificationsEnabled(false)
	require.NoError(t, err)
	assert.False(t, prefs.NotificationsEnabled)

	got, err := store.GetPreferences()
	require.NoError(t, err)
	assert.False(t, got.NotificationsEnabled)
}
