package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [book-id]",
	Short: "Mark a book as currently reading",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.StartBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📖 Started reading book #%d: %s\n", book.ID, book.Title)
		if book.StartedAt != nil {
			fmt.Printf("Started on: %s\n", book.StartedAt.Format("Jan 2, 2006"))
		}
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish [book-id]",
	Short: "Mark a book as read",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.FinishBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Finished book #%d: %s\n", book.ID, book.Title)
		if book.FinishedAt != nil {
			fmt.Printf("Finished on: %s\n", book.FinishedAt.Format("Jan 2, 2006"))
		}

		if minutes, err := agg.MinutesForBook(book.ID); err == nil && minutes > 0 {
			fmt.Printf("Total time reading: %s\n", formatMinutes(minutes))
		}
	},
}

var shelveCmd = &cobra.Command{
	Use:   "shelve [book-id]",
	Short: "Move a book back to the want-to-read shelf",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.ShelveBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗃️  Shelved book #%d: %s\n", book.ID, book.Title)
		fmt.Printf("Status: %s\n", statusLabel(book.Status))
	},
}
