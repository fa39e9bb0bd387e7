package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseSessionDate resolves user input into a logical reading day
// (YYYY-MM-DD, local time). Supported formats:
// - "" or "today"
// - "yesterday"
// - "X days ago" (e.g., "3 days ago", "1 day ago")
// - dd/mm/yyyy (e.g., "15/12/2024")
// - yyyy-mm-dd (e.g., "2024-12-15")
// Backdating is allowed deliberately (catch-up logging); future days are
// rejected since the session cannot have happened yet.
func ParseSessionDate(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today.Format("2006-01-02"), nil
	case "yesterday":
		return today.AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	if day, err := parseDaysAgo(input, today); err == nil {
		return day, nil
	}

	day, err := parseExplicitDate(input)
	if err != nil {
		return "", fmt.Errorf("invalid date format. Use: today, yesterday, X days ago, dd/mm/yyyy or yyyy-mm-dd")
	}

	if day.After(today) {
		return "", fmt.Errorf("session date cannot be in the future")
	}

	return day.Format("2006-01-02"), nil
}

// parseDaysAgo parses "X days ago" relative formats
func parseDaysAgo(input string, today time.Time) (string, error) {
	agoRegex := regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
	matches := agoRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}
	if amount < 0 || amount > 365 {
		return "", fmt.Errorf("days must be between 0 and 365")
	}

	return today.AddDate(0, 0, -amount).Format("2006-01-02"), nil
}

// parseExplicitDate parses dd/mm/yyyy and yyyy-mm-dd formats
func parseExplicitDate(input string) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	if matches := dateRegex.FindStringSubmatch(input); len(matches) == 4 {
		day, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])

		if day < 1 || day > 31 {
			return time.Time{}, fmt.Errorf("day must be between 1 and 31")
		}
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("month must be between 1 and 12")
		}
		if year < 2000 || year > 2100 {
			return time.Time{}, fmt.Errorf("year must be between 2000 and 2100")
		}

		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		// Check the date is real (handles leap years, etc.)
		if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
			return time.Time{}, fmt.Errorf("invalid date")
		}
		return d, nil
	}

	d, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return d, nil
}

// FormatDay renders a logical day for display, relative to today
func FormatDay(day string, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	d, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return day
	}

	daysDiff := int(today.Sub(d).Hours() / 24)
	switch {
	case daysDiff == 0:
		return "today"
	case daysDiff == 1:
		return "yesterday"
	case daysDiff > 1 && daysDiff <= 7:
		return fmt.Sprintf("%s (%d days ago)", d.Format("Mon Jan 2"), daysDiff)
	default:
		return d.Format("Jan 2, 2006")
	}
}
