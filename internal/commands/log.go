package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/parser"
)

var logCmd = &cobra.Command{
	Use:   "log [book-id] [minutes]",
	Short: "Log a reading session",
	Long: `Log a reading session for a book.

The session date defaults to today; backdated catch-up logging is allowed.

Examples:
  pagestreak log 2 30                 # 30 minutes today
  pagestreak log 2 45 --pages 20      # with page tracking
  pagestreak log 2 25 --date yesterday
  pagestreak log 2 60 --date "3 days ago" --note "train ride"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Error: invalid minutes '%s'\n", args[1])
			return
		}

		dateFlag, _ := cmd.Flags().GetString("date")
		day, err := parser.ParseSessionDate(dateFlag, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.LogSessionRequest{
			BookID:  uint(bookID),
			Minutes: minutes,
			Date:    day,
		}
		if cmd.Flags().Changed("pages") {
			pages, _ := cmd.Flags().GetInt("pages")
			req.Pages = &pages
		}
		if note, _ := cmd.Flags().GetString("note"); note != "" {
			req.Note = note
		}

		session, err := store.LogSession(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		book, err := store.GetBookByID(session.BookID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// First session on a shelved book means the user started reading it
		if book.Status == models.StatusWantToRead {
			if updated, err := store.StartBook(book.ID); err == nil {
				book = updated
			}
		}

		// Keep the bookmark in step with session-tracked pages
		if err := agg.SyncCurrentPage(book.ID); err != nil {
			logger.Warn("failed to sync current page")
		}

		fmt.Printf("📖 Logged %dm for book #%d: %s (%s)\n",
			session.Minutes, book.ID, book.Title, parser.FormatDay(session.Date, time.Now()))
		if session.Pages != nil {
			fmt.Printf("  Pages read: %d\n", *session.Pages)
		}

		printDailyGoalLine()
	},
}

// printDailyGoalLine shows today's total against the daily goal. Display
// only: any failure degrades to silence, never an error.
func printDailyGoalLine() {
	prefs, err := store.GetPreferences()
	if err != nil {
		return
	}
	minutes, err := agg.MinutesToday()
	if err != nil {
		return
	}

	if minutes >= prefs.DailyGoalMinutes {
		fmt.Printf("Today: %d/%d min - goal met ✅\n", minutes, prefs.DailyGoalMinutes)
	} else {
		fmt.Printf("Today: %d/%d min - %d min to go\n", minutes, prefs.DailyGoalMinutes, prefs.DailyGoalMinutes-minutes)
	}
}

func init() {
	logCmd.Flags().IntP("pages", "p", 0, "Pages read in this session")
	logCmd.Flags().StringP("date", "d", "", "Session date: today, yesterday, X days ago, dd/mm/yyyy")
	logCmd.Flags().String("note", "", "Session notes")
}
