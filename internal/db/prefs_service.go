package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pagestreak/pagestreak/internal/models"
)

// GetPreferences returns the singleton preferences row, creating it with
// defaults on first use. Absent preferences are never an error.
func (s *Store) GetPreferences() (*models.Preferences, error) {
	var prefs models.Preferences

	err := s.db.First(&prefs, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.Preferences{
			ID:                   1,
			DailyGoalMinutes:     models.DefaultDailyGoalMinutes,
			ReminderHours:        models.DefaultReminderHours,
			NotificationsEnabled: true,
		}
		if err := s.db.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

// SetDailyGoal updates the minutes-per-day goal
func (s *Store) SetDailyGoal(minutes int) (*models.Preferences, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("daily goal must be positive")
	}

	prefs, err := s.GetPreferences()
	if err != nil {
		return nil, err
	}

	prefs.DailyGoalMinutes = minutes
	if err := s.db.Save(prefs).Error; err != nil {
		return nil, err
	}

	return prefs, nil
}

// SetReminderHours updates the hours-after-last-open reminder target
func (s *Store) SetReminderHours(hours int) (*models.Preferences, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("reminder hours must be positive")
	}

	prefs, err := s.GetPreferences()
	if err != nil {
		return nil, err
	}

	prefs.ReminderHours = hours
	if err := s.db.Save(prefs).Error; err != nil {
		return nil, err
	}

	return prefs, nil
}

// SetNotificationsEnabled toggles reminder notifications
func (s *Store) SetNotificationsEnabled(enabled bool) (*models.Preferences, error) {
	prefs, err := s.GetPreferences()
	if err != nil {
		return nil, err
	}

	prefs.NotificationsEnabled = enabled
	if err := s.db.Save(prefs).Error; err != nil {
		return nil, err
	}

	return prefs, nil
}
