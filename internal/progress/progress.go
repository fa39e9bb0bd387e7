package progress

import (
	"math"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
)

// Source identifies where a book's progress figure came from
type Source string

const (
	SourceSessions    Source = "sessions"     // summed from page-tracked sessions
	SourceCurrentPage Source = "current_page" // book's stored bookmark
	SourceNone        Source = "none"         // nothing to go on
)

// BookProgress is page-based completion derived from sessions only
type BookProgress struct {
	PagesRead  int
	Percentage int
	IsComplete bool
}

// EnhancedProgress is BookProgress plus the source it was derived from.
// Sources are tried in order: sessions, then the stored current page, then
// none. Books logged before page tracking existed still report something
// honest instead of fabricated zeros-from-sessions.
type EnhancedProgress struct {
	PagesRead  int
	Percentage int
	IsComplete bool
	Source     Source
}

// Aggregator computes reading-progress figures straight from session rows.
// No running totals are kept anywhere, so the numbers cannot drift.
type Aggregator struct {
	store *db.Store
	clock Clock
}

// NewAggregator creates an aggregator over the given store. A nil clock
// means wall-clock time.
func NewAggregator(store *db.Store, clock Clock) *Aggregator {
	if clock == nil {
		clock = systemClock{}
	}
	return &Aggregator{store: store, clock: clock}
}

// MinutesOnDay returns total minutes read on one logical day
func (a *Aggregator) MinutesOnDay(day string) (int, error) {
	return a.store.SumMinutesOnDay(day)
}

// MinutesToday returns total minutes read today
func (a *Aggregator) MinutesToday() (int, error) {
	return a.store.SumMinutesOnDay(Day(a.clock.Now()))
}

// MinutesForBook returns total time spent reading a book, in minutes
func (a *Aggregator) MinutesForBook(bookID uint) (int, error) {
	return a.store.SumMinutesForBook(bookID)
}

// BookProgressFromSessions derives page-based completion from the book's
// sessions. Sessions without a page count contribute nothing here.
func (a *Aggregator) BookProgressFromSessions(book *models.Book) (BookProgress, error) {
	pages, err := a.store.SumPagesForBook(book.ID)
	if err != nil {
		return BookProgress{}, err
	}

	pct := percentage(pages, book.TotalPages)
	return BookProgress{
		PagesRead:  pages,
		Percentage: pct,
		IsComplete: pct >= 100,
	}, nil
}

// BookEnhancedProgress tries each progress source in priority order and
// tags the result with the one that won.
func (a *Aggregator) BookEnhancedProgress(book *models.Book) (EnhancedProgress, error) {
	fromSessions, err := a.BookProgressFromSessions(book)
	if err != nil {
		return EnhancedProgress{}, err
	}

	if fromSessions.PagesRead > 0 {
		return EnhancedProgress{
			PagesRead:  fromSessions.PagesRead,
			Percentage: fromSessions.Percentage,
			IsComplete: fromSessions.IsComplete,
			Source:     SourceSessions,
		}, nil
	}

	if book.CurrentPage > 0 {
		pct := percentage(book.CurrentPage, book.TotalPages)
		return EnhancedProgress{
			PagesRead:  book.CurrentPage,
			Percentage: pct,
			IsComplete: pct >= 100,
			Source:     SourceCurrentPage,
		}, nil
	}

	return EnhancedProgress{Source: SourceNone}, nil
}

// SyncCurrentPage overwrites the book's bookmark with the session-derived
// page total, keeping both progress signals consistent. A zero total is a
// no-op: a manually set bookmark must never regress because no sessions
// tracked pages.
func (a *Aggregator) SyncCurrentPage(bookID uint) error {
	pages, err := a.store.SumPagesForBook(bookID)
	if err != nil {
		return err
	}
	if pages == 0 {
		return nil
	}

	return a.store.SetCurrentPage(bookID, pages)
}

// DayMinutes is one entry of the weekly series
type DayMinutes struct {
	Day     string
	Minutes int
}

// WeeklySeries returns the trailing 7 local calendar days, oldest first.
// Days with no sessions appear with 0 minutes.
func (a *Aggregator) WeeklySeries() ([]DayMinutes, error) {
	now := a.clock.Now()

	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		days[i] = Day(now.AddDate(0, 0, i-6))
	}

	totals, err := a.store.DailyTotals(days)
	if err != nil {
		return nil, err
	}

	series := make([]DayMinutes, 7)
	for i, day := range days {
		series[i] = DayMinutes{Day: day, Minutes: totals[day]}
	}

	return series, nil
}

// percentage computes round(read/total*100) clamped to [0, 100].
// A non-positive total yields 0 rather than dividing by zero.
func percentage(read, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(read) / float64(total) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
