package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pagestreak/pagestreak/internal/models"
)

// RecordOpen stamps the open time on the usage row for the given day
func (s *Store) RecordOpen(day string, t time.Time) error {
	return s.upsertUsage(day, func(u *models.AppUsage) {
		u.OpenedAt = &t
	})
}

// RecordClose stamps the close time on the usage row for the given day
func (s *Store) RecordClose(day string, t time.Time) error {
	return s.upsertUsage(day, func(u *models.AppUsage) {
		u.ClosedAt = &t
	})
}

func (s *Store) upsertUsage(day string, apply func(*models.AppUsage)) error {
	var usage models.AppUsage

	err := s.db.Where("day = ?", day).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		usage = models.AppUsage{Day: day}
		apply(&usage)
		return s.db.Create(&usage).Error
	}
	if err != nil {
		return err
	}

	apply(&usage)
	return s.db.Save(&usage).Error
}

// LastOpenedAt returns the most recent open time, or nil if the app has
// never recorded one. No record is not an error.
func (s *Store) LastOpenedAt() (*time.Time, error) {
	var usage models.AppUsage

	err := s.db.Where("opened_at IS NOT NULL").
		Order("opened_at DESC").
		First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return usage.OpenedAt, nil
}

// SetPendingReminder replaces any pending reminder with the given one.
// The table never holds more than a single row.
func (s *Store) SetPendingReminder(r models.Reminder) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Create(&r).Error
	})
}

// ClearPendingReminder removes any pending reminder. Clearing when nothing
// is pending is a no-op.
func (s *Store) ClearPendingReminder() error {
	return s.db.Where("1 = 1").Delete(&models.Reminder{}).Error
}

// PendingReminder returns the pending reminder, or nil if none is scheduled
func (s *Store) PendingReminder() (*models.Reminder, error) {
	var r models.Reminder

	err := s.db.First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// DueReminders returns reminders whose fire time has passed
func (s *Store) DueReminders(now time.Time) ([]models.Reminder, error) {
	var due []models.Reminder

	err := s.db.Where("fire_at <= ?", now).Find(&due).Error
	if err != nil {
		return nil, err
	}

	return due, nil
}
