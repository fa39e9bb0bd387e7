package progress

import "time"

// Clock supplies the current time. Injected so streak and reminder math
// can be tested against a fixed "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock Clock
func SystemClock() Clock { return systemClock{} }

// Day formats a time as a logical reading day. Always local time: a UTC
// date would shift the day boundary for everyone not living in UTC.
func Day(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
