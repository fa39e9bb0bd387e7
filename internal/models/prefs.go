package models

import "time"

// Defaults used when no preferences row exists yet
const (
	DefaultDailyGoalMinutes = 30
	DefaultReminderHours    = 24
)

// Preferences is a singleton row (ID fixed at 1) holding the user's goals
// and reminder settings.
type Preferences struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	DailyGoalMinutes     int  `gorm:"default:30" json:"daily_goal_minutes"`
	ReminderHours        int  `gorm:"default:24" json:"reminder_hours"` // target hours after last open
	NotificationsEnabled bool `gorm:"default:true" json:"notifications_enabled"`
}
