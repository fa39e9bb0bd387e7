package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search your library",
	Long: `Search books by title, author or notes.

Matching is case insensitive. Default is substring matching; use --exact
or --prefix for stricter modes.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		mode := "contains"
		if exact, _ := cmd.Flags().GetBool("exact"); exact {
			mode = "exact"
		} else if prefix, _ := cmd.Flags().GetBool("prefix"); prefix {
			mode = "prefix"
		}

		books, err := store.SearchBooks(query, mode)
		if err != nil {
			fmt.Printf("Error searching books: %v\n", err)
			return
		}

		if len(books) == 0 {
			fmt.Printf("No books matching %q.\n", query)
			return
		}

		fmt.Printf("Found %d book(s) matching %q:\n\n", len(books), query)
		renderBookTable(books)
	},
}

func init() {
	searchCmd.Flags().Bool("exact", false, "Exact match")
	searchCmd.Flags().Bool("prefix", false, "Prefix match")
}
