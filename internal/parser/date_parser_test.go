package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionDate(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty means today", "", "2026-01-10"},
		{"today", "today", "2026-01-10"},
		{"uppercase", "TODAY", "2026-01-10"},
		{"yesterday", "yesterday", "2026-01-09"},
		{"days ago", "3 days ago", "2026-01-07"},
		{"one day ago", "1 day ago", "2026-01-09"},
		{"zero days ago", "0 days ago", "2026-01-10"},
		{"slash format", "05/01/2026", "2026-01-05"},
		{"iso format", "2026-01-05", "2026-01-05"},
		{"crossing month boundary", "15 days ago", "2025-12-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSessionDateRejects(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
	}{
		{"future iso date", "2026-01-11"},
		{"future slash date", "11/01/2026"},
		{"too many days ago", "400 days ago"},
		{"nonexistent date", "31/02/2026"},
		{"year out of range", "01/01/1999"},
		{"garbage", "next tuesday"},
		{"us ordering rejected", "01/13/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionDate(tt.input, now)
			assert.Error(t, err)
		})
	}
}

func TestFormatDay(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		day  string
		want string
	}{
		{"today", "2026-01-10", "today"},
		{"yesterday", "2026-01-09", "yesterday"},
		{"within a week", "2026-01-07", "Wed Jan 7 (3 days ago)"},
		{"older", "2025-12-01", "Dec 1, 2025"},
		{"unparseable passes through", "not-a-day", "not-a-day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDay(tt.day, now))
		})
	}
}
