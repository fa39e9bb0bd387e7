package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/tui"
)

var readCmd = &cobra.Command{
	Use:   "read [book-id]",
	Short: "Start an interactive reading timer",
	Long: `Open a reading timer for a book. Stopping the timer logs a session
with the elapsed minutes and, optionally, the pages you read.

Example:
  pagestreak read 2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		book, err := store.GetBookByID(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := tui.RunReadingTimerTUI(store, agg, book); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
