package models

import "time"

// AppUsage records when the app was last opened and closed on a given day.
// Only used by the reminder scheduler to anchor its fire-time computation.
type AppUsage struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	Day      string     `gorm:"not null;uniqueIndex;size:10" json:"day"`
	OpenedAt *time.Time `json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at"`
}

// Reminder is a pending scheduled notification. The scheduler keeps at most
// one row in this table at any time.
type Reminder struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FireAt time.Time `gorm:"not null" json:"fire_at"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
}
