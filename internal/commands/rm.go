package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [book-id]",
	Aliases: []string{"remove"},
	Short:   "Delete a book and its sessions",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid book ID '%s'\n", args[0])
			return
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			sessions, err := store.SessionsForBook(uint(bookID))
			if err == nil && len(sessions) > 0 {
				fmt.Printf("Book #%d has %d logged session(s) that will be deleted with it.\n", bookID, len(sessions))
				fmt.Println("Re-run with --force to confirm.")
				return
			}
		}

		book, err := store.DeleteBook(uint(bookID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted book #%d: %s\n", book.ID, book.Title)
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "Delete without confirmation, including sessions")
}
