package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func addBook(t *testing.T, store *db.Store, title string, totalPages int) *models.Book {
	t.Helper()
	book, err := store.CreateBook(db.CreateBookRequest{Title: title, TotalPages: totalPages})
	require.NoError(t, err)
	return book
}

func logSession(t *testing.T, store *db.Store, bookID uint, minutes int, pages *int, day string) {
	t.Helper()
	_, err := store.LogSession(db.LogSessionRequest{
		BookID:  bookID,
		Minutes: minutes,
		Pages:   pages,
		Date:    day,
	})
	require.NoError(t, err)
}

func intPtr(n int) *int { return &n }

func TestMinutesOnDay(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 412)

	logSession(t, store, book.ID, 25, nil, "2026-01-10")
	logSession(t, store, book.ID, 15, nil, "2026-01-10")
	logSession(t, store, book.ID, 40, nil, "2026-01-09")

	minutes, err := agg.MinutesOnDay("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 40, minutes)

	minutes, err = agg.MinutesOnDay("2026-01-08")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestMinutesForBook(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	dune := addBook(t, store, "Dune", 412)
	other := addBook(t, store, "Hyperion", 482)

	logSession(t, store, dune.ID, 30, nil, "2026-01-10")
	logSession(t, store, dune.ID, 20, nil, "2026-01-09")
	logSession(t, store, other.ID, 60, nil, "2026-01-10")

	minutes, err := agg.MinutesForBook(dune.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, minutes)
}

func TestBookProgressFromSessions(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	// Mixed page tracking: the nil-pages session counts for minutes but
	// contributes nothing to page progress.
	logSession(t, store, book.ID, 30, intPtr(15), "2026-01-08")
	logSession(t, store, book.ID, 45, intPtr(20), "2026-01-09")
	logSession(t, store, book.ID, 20, nil, "2026-01-10")

	prog, err := agg.BookProgressFromSessions(book)
	require.NoError(t, err)
	assert.Equal(t, 35, prog.PagesRead)
	assert.Equal(t, 12, prog.Percentage)
	assert.False(t, prog.IsComplete)
}

func TestBookProgressComplete(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Novella", 100)

	logSession(t, store, book.ID, 120, intPtr(100), "2026-01-10")

	prog, err := agg.BookProgressFromSessions(book)
	require.NoError(t, err)
	assert.Equal(t, 100, prog.Percentage)
	assert.True(t, prog.IsComplete)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		read  int
		total int
		want  int
	}{
		{"zero read", 0, 300, 0},
		{"rounds up", 35, 300, 12},
		{"rounds down", 31, 300, 10},
		{"exact", 150, 300, 50},
		{"clamped above", 450, 300, 100},
		{"unknown total", 50, 0, 0},
		{"negative total", 50, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentage(tt.read, tt.total))
		})
	}
}

func TestEnhancedProgressPrefersSessions(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	logSession(t, store, book.ID, 30, intPtr(60), "2026-01-10")
	require.NoError(t, store.SetCurrentPage(book.ID, 200))
	book, err := store.GetBookByID(book.ID)
	require.NoError(t, err)

	ep, err := agg.BookEnhancedProgress(book)
	require.NoError(t, err)
	assert.Equal(t, SourceSessions, ep.Source)
	assert.Equal(t, 60, ep.PagesRead)
	assert.Equal(t, 20, ep.Percentage)
}

func TestEnhancedProgressFallsBackToCurrentPage(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	// Minutes logged but no pages tracked anywhere
	logSession(t, store, book.ID, 30, nil, "2026-01-10")
	require.NoError(t, store.SetCurrentPage(book.ID, 150))
	book, err := store.GetBookByID(book.ID)
	require.NoError(t, err)

	ep, err := agg.BookEnhancedProgress(book)
	require.NoError(t, err)
	assert.Equal(t, SourceCurrentPage, ep.Source)
	assert.Equal(t, 150, ep.PagesRead)
	assert.Equal(t, 50, ep.Percentage)
}

func TestEnhancedProgressNone(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	ep, err := agg.BookEnhancedProgress(book)
	require.NoError(t, err)
	assert.Equal(t, SourceNone, ep.Source)
	assert.Equal(t, 0, ep.PagesRead)

	// Repeated reads must agree
	again, err := agg.BookEnhancedProgress(book)
	require.NoError(t, err)
	assert.Equal(t, ep, again)
}

func TestSyncCurrentPage(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	logSession(t, store, book.ID, 30, intPtr(40), "2026-01-09")
	logSession(t, store, book.ID, 25, intPtr(35), "2026-01-10")

	require.NoError(t, agg.SyncCurrentPage(book.ID))

	book, err := store.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, book.CurrentPage)
}

func TestSyncCurrentPageNoSessionsKeepsBookmark(t *testing.T) {
	store := newTestStore(t)
	agg := NewAggregator(store, nil)
	book := addBook(t, store, "Dune", 300)

	require.NoError(t, store.SetCurrentPage(book.ID, 120))
	logSession(t, store, book.ID, 30, nil, "2026-01-10")

	require.NoError(t, agg.SyncCurrentPage(book.ID))

	book, err := store.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, book.CurrentPage)
}

func TestWeeklySeries(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 1, 10, 14, 0, 0, 0, time.Local)
	agg := NewAggregator(store, fakeClock{now: now})
	book := addBook(t, store, "Dune", 412)

	logSession(t, store, book.ID, 30, nil, "2026-01-10")
	logSession(t, store, book.ID, 45, nil, "2026-01-08")
	// Outside the trailing window
	logSession(t, store, book.ID, 90, nil, "2026-01-03")

	series, err := agg.WeeklySeries()
	require.NoError(t, err)
	require.Len(t, series, 7)

	assert.Equal(t, "2026-01-04", series[0].Day)
	assert.Equal(t, "2026-01-10", series[6].Day)

	want := []int{0, 0, 0, 0, 45, 0, 30}
	for i, entry := range series {
		assert.Equal(t, want[i], entry.Minutes, "day %s", entry.Day)
	}
}

func TestDay(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 45, 0, 0, time.Local)
	assert.Equal(t, "2026-08-28", Day(ts))
}
