package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List your library",
	Long:    "List books with optional status filter. Opens the interactive browser by default, use --no-ui for a plain table.",
	Run: func(cmd *cobra.Command, args []string) {
		statusFlag, _ := cmd.Flags().GetString("status")
		status, err := normalizeStatus(statusFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		books, err := store.ListBooks(status)
		if err != nil {
			fmt.Printf("Error fetching books: %v\n", err)
			return
		}

		if len(books) == 0 {
			fmt.Println("No books found. Use 'pagestreak add \"Book title\"' to add your first book.")
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			renderBookTable(books)
			return
		}

		if err := tui.RunLibraryTUI(store, agg, books); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// normalizeStatus maps user-friendly filter names onto status values
func normalizeStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "want", "wishlist", models.StatusWantToRead:
		return models.StatusWantToRead, nil
	case "reading", models.StatusCurrentlyReading:
		return models.StatusCurrentlyReading, nil
	case "read", "finished", "done":
		return models.StatusRead, nil
	}
	return "", fmt.Errorf("unknown status %q. Use: want, reading, read", s)
}

// statusLabel renders a status value for table output
func statusLabel(status string) string {
	switch status {
	case models.StatusWantToRead:
		return "want"
	case models.StatusCurrentlyReading:
		return "reading"
	case models.StatusRead:
		return "read"
	}
	return status
}

// renderBookTable prints a plain library table
func renderBookTable(books []models.Book) {
	fmt.Printf("%-4s %-8s %-36s %-24s %-9s %s\n", "ID", "STATUS", "TITLE", "AUTHOR", "PROGRESS", "TIME")
	fmt.Println(strings.Repeat("-", 92))

	for _, book := range books {
		title := book.Title
		if len(title) > 34 {
			title = title[:31] + "..."
		}
		author := book.Author
		if len(author) > 22 {
			author = author[:19] + "..."
		}

		progressStr := "-"
		if agg != nil {
			if ep, err := agg.BookEnhancedProgress(&book); err == nil && ep.Source != "none" {
				progressStr = fmt.Sprintf("%d%%", ep.Percentage)
			}
		}

		timeStr := "-"
		if agg != nil {
			if minutes, err := agg.MinutesForBook(book.ID); err == nil && minutes > 0 {
				timeStr = formatMinutes(minutes)
			}
		}

		fmt.Printf("%-4d %-8s %-36s %-24s %-9s %s\n",
			book.ID,
			statusLabel(book.Status),
			title,
			author,
			progressStr,
			timeStr)
	}
}

// formatMinutes renders a minute total in a human-readable way
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: want, reading, read")
	listCmd.Flags().Bool("no-ui", false, "Plain table output instead of the interactive browser")
}
