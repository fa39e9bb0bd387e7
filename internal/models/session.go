package models

import (
	"time"
	"gorm.io/gorm"
)

// ReadingSession represents one logged interval of reading activity.
// Date is the logical reading day (local YYYY-MM-DD), not the moment the
// record was created - backdated catch-up logging is allowed.
type ReadingSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookID  uint   `gorm:"not null;index" json:"book_id"`
	Minutes int    `gorm:"not null" json:"minutes"`
	Pages   *int   `json:"pages"` // nil for records logged without page tracking
	Date    string `gorm:"not null;index;size:10" json:"date"`
	Note    string `json:"note"`

	// Relationships
	Book Book `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"book"`
}
