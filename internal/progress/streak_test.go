package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 1, 10, 18, 0, 0, 0, time.Local)
	day := func(daysAgo int) string {
		return Day(now.AddDate(0, 0, -daysAgo))
	}

	tests := []struct {
		name string
		// minutes per day, keyed by days-ago
		sessions map[int][]int
		want     int
	}{
		{
			name:     "no sessions",
			sessions: map[int][]int{},
			want:     0,
		},
		{
			name:     "three consecutive days ending today",
			sessions: map[int][]int{0: {30}, 1: {45}, 2: {35}},
			want:     3,
		},
		{
			name:     "today missing kills the streak",
			sessions: map[int][]int{1: {45}, 2: {35}},
			want:     0,
		},
		{
			name:     "gap two days ago",
			sessions: map[int][]int{0: {30}, 2: {60}, 3: {60}},
			want:     1,
		},
		{
			name:     "day qualifies by summing sessions",
			sessions: map[int][]int{0: {15, 15}, 1: {30}},
			want:     2,
		},
		{
			name:     "under-goal day does not qualify",
			sessions: map[int][]int{0: {30}, 1: {10}, 2: {30}},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			agg := NewAggregator(store, fakeClock{now: now})
			book := addBook(t, store, "Dune", 412)

			for daysAgo, minutes := range tt.sessions {
				for _, m := range minutes {
					logSession(t, store, book.ID, m, nil, day(daysAgo))
				}
			}

			streak, err := agg.CurrentStreak(30)
			require.NoError(t, err)
			assert.Equal(t, tt.want, streak)
		})
	}
}
