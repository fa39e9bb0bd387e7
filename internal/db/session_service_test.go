package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestLogSessionValidation(t *testing.T) {
	store := newTestStore(t)
	book, err := store.CreateBook(CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  LogSessionRequest
	}{
		{"zero minutes", LogSessionRequest{BookID: book.ID, Minutes: 0, Date: "2026-01-10"}},
		{"negative minutes", LogSessionRequest{BookID: book.ID, Minutes: -10, Date: "2026-01-10"}},
		{"negative pages", LogSessionRequest{BookID: book.ID, Minutes: 30, Pages: intPtr(-5), Date: "2026-01-10"}},
		{"bad date", LogSessionRequest{BookID: book.ID, Minutes: 30, Date: "10/01/2026"}},
		{"unknown book", LogSessionRequest{BookID: 999, Minutes: 30, Date: "2026-01-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.LogSession(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSessionsForBookOrder(t *testing.T) {
	store := newTestStore(t)
	book, err := store.CreateBook(CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)

	for _, day := range []string{"2026-01-08", "2026-01-10", "2026-01-09"} {
		_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 20, Date: day})
		require.NoError(t, err)
	}

	sessions, err := store.SessionsForBook(book.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2026-01-10", sessions[0].Date)
	assert.Equal(t, "2026-01-09", sessions[1].Date)
	assert.Equal(t, "2026-01-08", sessions[2].Date)
}

func TestSumMinutesAndPages(t *testing.T) {
	store := newTestStore(t)
	book, err := store.CreateBook(CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)

	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 30, Pages: intPtr(15), Date: "2026-01-10"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 20, Date: "2026-01-10"})
	require.NoError(t, err)

	minutes, err := store.SumMinutesOnDay("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 50, minutes)

	minutes, err = store.SumMinutesForBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, minutes)

	pages, err := store.SumPagesForBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, pages)

	// Empty aggregates are zero, not an error
	minutes, err = store.SumMinutesOnDay("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestDailyTotals(t *testing.T) {
	store := newTestStore(t)
	book, err := store.CreateBook(CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)

	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 30, Date: "2026-01-10"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 15, Date: "2026-01-10"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 40, Date: "2026-01-08"})
	require.NoError(t, err)

	totals, err := store.DailyTotals([]string{"2026-01-08", "2026-01-09", "2026-01-10"})
	require.NoError(t, err)

	assert.Equal(t, 40, totals["2026-01-08"])
	assert.Equal(t, 45, totals["2026-01-10"])
	_, ok := totals["2026-01-09"]
	assert.False(t, ok)
}

func TestQualifyingDays(t *testing.T) {
	store := newTestStore(t)
	book, err := store.CreateBook(CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)

	// Two short sessions that qualify only when summed
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 15, Date: "2026-01-10"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 15, Date: "2026-01-10"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 45, Date: "2026-01-08"})
	require.NoError(t, err)
	_, err = store.LogSession(LogSessionRequest{BookID: book.ID, Minutes: 10, Date: "2026-01-09"})
	require.NoError(t, err)

	days, err := store.QualifyingDays(30)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-10", "2026-01-08"}, days)
}
