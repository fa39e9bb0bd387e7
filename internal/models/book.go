package models

import (
	"time"
	"gorm.io/gorm"
)

// Reading status values for a book
const (
	StatusWantToRead       = "want_to_read"
	StatusCurrentlyReading = "currently_reading"
	StatusRead             = "read"
)

// Book represents one title in the user's library
type Book struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string     `gorm:"not null" json:"title"`
	Author      string     `json:"author"`
	TotalPages  int        `gorm:"not null" json:"total_pages"`
	CurrentPage int        `gorm:"default:0" json:"current_page"`
	Status      string     `gorm:"default:want_to_read" json:"status"` // want_to_read, currently_reading, read
	StartedAt   *time.Time `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at"`

	// Optional metadata
	ISBN      string `json:"isbn"`
	CoverID   int    `json:"cover_id"` // Open Library cover identifier
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Rating    int    `gorm:"default:0" json:"rating"` // 0=unrated, 1-5 stars
	Note      string `json:"note"`

	// Relationships
	Sessions []ReadingSession `gorm:"foreignKey:BookID" json:"sessions"`
}
