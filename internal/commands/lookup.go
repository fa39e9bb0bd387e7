package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/openlibrary"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Search Open Library for book metadata",
	Long: `Search the public Open Library catalog and optionally add a result
to your library with its metadata (author, pages, year, ISBN) filled in.

Examples:
  pagestreak lookup "the left hand of darkness"
  pagestreak lookup dune --limit 5`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")

		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()

		client := openlibrary.NewClient()
		docs, err := client.Search(ctx, query, limit)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(docs) == 0 {
			fmt.Printf("No results for %q.\n", query)
			return
		}

		for i, doc := range docs {
			line := fmt.Sprintf("%2d. %s", i+1, doc.Title)
			if doc.Author() != "" {
				line += " - " + doc.Author()
			}
			var details []string
			if doc.FirstPublishYear > 0 {
				details = append(details, strconv.Itoa(doc.FirstPublishYear))
			}
			if doc.MedianPages > 0 {
				details = append(details, fmt.Sprintf("%d pages", doc.MedianPages))
			}
			if len(details) > 0 {
				line += " (" + strings.Join(details, ", ") + ")"
			}
			fmt.Println(line)
		}

		fmt.Print("\nAdd which result? (number, empty to skip): ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(docs) {
			fmt.Printf("Error: invalid selection '%s'\n", input)
			return
		}

		doc := docs[n-1]
		book, err := store.CreateBook(db.CreateBookRequest{
			Title:      doc.Title,
			Author:     doc.Author(),
			TotalPages: doc.MedianPages,
			ISBN:       doc.ISBN(),
			CoverID:    doc.CoverID,
			Publisher:  doc.Publisher(),
			Year:       doc.FirstPublishYear,
		})
		if err != nil {
			fmt.Printf("Error adding book: %v\n", err)
			return
		}

		fmt.Printf("📚 Added book #%d: %s\n", book.ID, book.Title)
	},
}

func init() {
	lookupCmd.Flags().IntP("limit", "l", 10, "Maximum number of results")
}
