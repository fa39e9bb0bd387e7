package reminder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/notify"
	"github.com/pagestreak/pagestreak/internal/progress"
)

const (
	reminderTitle = "Time to read"
	reminderBody  = "Pick up your book and keep the streak alive"

	// minimumDelay keeps an already-overdue reminder from firing in the
	// middle of the close transition.
	minimumDelay = time.Minute
)

// Scheduler decides whether and when a single read reminder should fire.
// It is constructed explicitly with its dependencies - there is no hidden
// shared instance.
type Scheduler struct {
	store    *db.Store
	agg      *progress.Aggregator
	notifier notify.Notifier
	clock    progress.Clock
	log      *zap.Logger
}

// NewScheduler builds a scheduler. A nil clock means wall-clock time and
// a nil logger discards output.
func NewScheduler(store *db.Store, agg *progress.Aggregator, notifier notify.Notifier, clock progress.Clock, log *zap.Logger) *Scheduler {
	if clock == nil {
		clock = progress.SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{store: store, agg: agg, notifier: notifier, clock: clock, log: log}
}

// AppOpened runs when the app comes to the foreground: any pending
// reminder is stale now that the user is active, so it is cancelled, and
// today's open time is recorded as the new anchor.
func (s *Scheduler) AppOpened() error {
	now := s.clock.Now()

	if err := s.store.ClearPendingReminder(); err != nil {
		return fmt.Errorf("failed to cancel pending reminder: %w", err)
	}

	return s.store.RecordOpen(progress.Day(now), now)
}

// AppClosed runs when the app goes to the background. If today's goal is
// already met nothing happens; otherwise the previous reminder (if any) is
// replaced with exactly one new reminder anchored to the last open time.
func (s *Scheduler) AppClosed() error {
	now := s.clock.Now()

	if err := s.store.RecordClose(progress.Day(now), now); err != nil {
		return err
	}

	prefs, err := s.store.GetPreferences()
	if err != nil {
		return err
	}

	minutes, err := s.agg.MinutesToday()
	if err != nil {
		return err
	}

	if minutes >= prefs.DailyGoalMinutes {
		s.log.Debug("daily goal met, no reminder needed",
			zap.Int("minutes", minutes), zap.Int("goal", prefs.DailyGoalMinutes))
		return nil
	}

	if !prefs.NotificationsEnabled {
		s.log.Warn("reminder skipped: notifications are disabled")
		return nil
	}

	lastOpen, err := s.store.LastOpenedAt()
	if err != nil {
		s.log.Warn("could not read last open time, using full delay", zap.Error(err))
		lastOpen = nil
	}

	target := time.Duration(prefs.ReminderHours) * time.Hour
	delay := delayUntilReminder(lastOpen, now, target)

	// Body carries the live remaining minutes so the text matches the
	// state at scheduling time.
	remaining := prefs.DailyGoalMinutes - minutes
	body := fmt.Sprintf("%s - %d min to go today", reminderBody, remaining)

	r := models.Reminder{
		FireAt: now.Add(delay),
		Title:  reminderTitle,
		Body:   body,
	}
	if err := s.store.SetPendingReminder(r); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	s.log.Debug("reminder scheduled",
		zap.Time("fire_at", r.FireAt), zap.Duration("delay", delay))
	return nil
}

// delayUntilReminder anchors the reminder to the last open time, not to
// the close event: closing and reopening repeatedly must not push the fire
// time further out, or the reminder would never arrive. Already past the
// target means fire after the minimum delay, never instantly or in the
// past.
func delayUntilReminder(lastOpen *time.Time, now time.Time, target time.Duration) time.Duration {
	if lastOpen == nil {
		return target
	}

	elapsed := now.Sub(*lastOpen)
	if elapsed >= target {
		return minimumDelay
	}

	return target - elapsed
}

// FireDue delivers any reminder whose fire time has passed and clears it.
// Delivery failure (no notification permission, headless session) is
// logged and swallowed - reminders are best effort, never retried.
func (s *Scheduler) FireDue() (int, error) {
	now := s.clock.Now()

	due, err := s.store.DueReminders(now)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	fired := 0
	for _, r := range due {
		if err := s.notifier.Send(r.Title, r.Body); err != nil {
			s.log.Warn("notification delivery failed", zap.Error(err))
			continue
		}
		fired++
	}

	if err := s.store.ClearPendingReminder(); err != nil {
		return fired, err
	}

	return fired, nil
}
