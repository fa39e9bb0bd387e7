package db

import (
	"fmt"
	"time"

	"github.com/pagestreak/pagestreak/internal/models"
)

// DayLayout is the format of a logical reading day
const DayLayout = "2006-01-02"

// LogSessionRequest holds the data needed to record a reading session
type LogSessionRequest struct {
	BookID  uint
	Minutes int
	Pages   *int // nil when the user didn't track pages
	Date    string
	Note    string
}

// LogSession records a reading session for a book. Sessions are immutable
// once created.
func (s *Store) LogSession(req LogSessionRequest) (*models.ReadingSession, error) {
	if req.Minutes <= 0 {
		return nil, fmt.Errorf("minutes must be positive")
	}
	if req.Pages != nil && *req.Pages < 0 {
		return nil, fmt.Errorf("pages cannot be negative")
	}
	if _, err := time.Parse(DayLayout, req.Date); err != nil {
		return nil, fmt.Errorf("invalid session date %q: %w", req.Date, err)
	}

	// Check the book exists before attaching a session to it
	if _, err := s.GetBookByID(req.BookID); err != nil {
		return nil, err
	}

	session := models.ReadingSession{
		BookID:  req.BookID,
		Minutes: req.Minutes,
		Pages:   req.Pages,
		Date:    req.Date,
		Note:    req.Note,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// SessionsForBook returns all sessions for a book, newest day first
func (s *Store) SessionsForBook(bookID uint) ([]models.ReadingSession, error) {
	var sessions []models.ReadingSession

	err := s.db.Where("book_id = ?", bookID).
		Order("date DESC, id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// SumMinutesOnDay returns total minutes read on one logical day. Days with
// no sessions return 0, not an error.
func (s *Store) SumMinutesOnDay(day string) (int, error) {
	var total int

	err := s.db.Model(&models.ReadingSession{}).
		Where("date = ?", day).
		Select("COALESCE(SUM(minutes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SumMinutesForBook returns total minutes ever logged against a book
func (s *Store) SumMinutesForBook(bookID uint) (int, error) {
	var total int

	err := s.db.Model(&models.ReadingSession{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(SUM(minutes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SumPagesForBook returns total pages logged against a book. Sessions with
// no page count are skipped by SUM, they still count toward minutes.
func (s *Store) SumPagesForBook(bookID uint) (int, error) {
	var total int

	err := s.db.Model(&models.ReadingSession{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(SUM(pages), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// DailyTotals returns per-day minute sums for the given days. Days without
// sessions are simply absent from the map.
func (s *Store) DailyTotals(days []string) (map[string]int, error) {
	type row struct {
		Date  string
		Total int
	}
	var rows []row

	err := s.db.Model(&models.ReadingSession{}).
		Where("date IN ?", days).
		Select("date, SUM(minutes) AS total").
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, r := range rows {
		totals[r.Date] = r.Total
	}

	return totals, nil
}

// QualifyingDays returns every day whose minute total met the goal,
// newest first. The streak walk runs over this list.
func (s *Store) QualifyingDays(goalMinutes int) ([]string, error) {
	var days []string

	err := s.db.Model(&models.ReadingSession{}).
		Group("date").
		Having("SUM(minutes) >= ?", goalMinutes).
		Order("date DESC").
		Pluck("date", &days).Error
	if err != nil {
		return nil, err
	}

	return days, nil
}
