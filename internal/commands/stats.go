package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/progress"
	"github.com/pagestreak/pagestreak/internal/tui"
)

const maxBarWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Long: `Show today's minutes against the goal, the current streak, a bar
chart of the trailing week, and progress for every book being read.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := renderStats(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func renderStats() error {
	prefs, err := store.GetPreferences()
	if err != nil {
		return err
	}

	fmt.Println("📚 Reading stats")
	fmt.Println()

	// Today + streak. Display path: degrade to zeros on failure.
	minutes, err := agg.MinutesToday()
	if err != nil {
		logger.Warn("failed to compute today's minutes")
		minutes = 0
	}
	if minutes >= prefs.DailyGoalMinutes {
		fmt.Printf("Today: %d/%d min - goal met ✅\n", minutes, prefs.DailyGoalMinutes)
	} else {
		fmt.Printf("Today: %d/%d min - %d min to go\n", minutes, prefs.DailyGoalMinutes, prefs.DailyGoalMinutes-minutes)
	}

	streak, err := agg.CurrentStreak(prefs.DailyGoalMinutes)
	if err != nil {
		logger.Warn("failed to compute streak")
		streak = 0
	}
	switch streak {
	case 0:
		fmt.Println("Current streak: none - read today to start one")
	case 1:
		fmt.Println("Current streak: 1 day 🔥")
	default:
		fmt.Printf("Current streak: %d days 🔥\n", streak)
	}

	// Weekly chart
	series, err := agg.WeeklySeries()
	if err != nil {
		return fmt.Errorf("failed to build weekly series: %w", err)
	}

	fmt.Println()
	fmt.Println("Last 7 days:")
	renderWeeklyChart(series, prefs.DailyGoalMinutes)

	weekTotal := 0
	for _, d := range series {
		weekTotal += d.Minutes
	}
	fmt.Printf("  Week total: %s\n", formatMinutes(weekTotal))

	// Per-book progress
	reading, err := store.ListBooks(models.StatusCurrentlyReading)
	if err != nil {
		return err
	}
	if len(reading) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Currently reading:")
	for _, book := range reading {
		line := fmt.Sprintf("  #%d %s", book.ID, book.Title)

		ep, err := agg.BookEnhancedProgress(&book)
		if err == nil {
			switch ep.Source {
			case progress.SourceSessions:
				line += fmt.Sprintf(" - %d%% (%d/%d pages)", ep.Percentage, ep.PagesRead, book.TotalPages)
			case progress.SourceCurrentPage:
				line += fmt.Sprintf(" - %d%% (at page %d)", ep.Percentage, book.CurrentPage)
			default:
				line += " - no page progress yet"
			}
		}

		if bookMinutes, err := agg.MinutesForBook(book.ID); err == nil && bookMinutes > 0 {
			line += ", " + formatMinutes(bookMinutes)
		}

		fmt.Println(line)
	}

	return nil
}

// renderWeeklyChart prints one bar per trailing day, oldest first. Days
// that met the goal get the success color.
func renderWeeklyChart(series []progress.DayMinutes, goal int) {
	maxMinutes := 0
	for _, d := range series {
		if d.Minutes > maxMinutes {
			maxMinutes = d.Minutes
		}
	}

	metStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright))

	for _, d := range series {
		label := d.Day
		if t, err := time.ParseInLocation("2006-01-02", d.Day, time.Local); err == nil {
			label = t.Format("Mon Jan 02")
		}

		width := 0
		if maxMinutes > 0 {
			width = d.Minutes * maxBarWidth / maxMinutes
		}
		if d.Minutes > 0 && width == 0 {
			width = 1
		}

		bar := strings.Repeat("█", width)
		if d.Minutes >= goal {
			bar = metStyle.Render(bar)
		} else {
			bar = barStyle.Render(bar)
		}

		fmt.Printf("  %s %4dm %s\n", label, d.Minutes, bar)
	}
}
