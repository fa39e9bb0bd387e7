package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/parser"
	"github.com/pagestreak/pagestreak/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [book title]",
	Short: "Add a book to your library",
	Long: `Add a book with optional metadata.

Modes:
  Interactive: pagestreak add -i (or just 'pagestreak add' with no arguments)
  Quick: pagestreak add "Book title" (with optional flags)
  Smart parsing: pagestreak add "Dune @Frank Herbert pages:412 year:1965"

Smart parsing syntax:
  @Author Name   - Author (runs until the next marker)
  pages:412      - Total page count
  year:1965      - Publication year
  isbn:978...    - ISBN (10 or 13 digits, dashes ok)
  pub:Chilton    - Publisher`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(cmd, args)
			return
		}

		parsed := parser.ParseBook(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			// Parsing issues: fall back to interactive with what we got
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Println("Opening interactive mode for confirmation...")
			runInteractiveAddWithParsed(parsed)
			return
		}

		runDirectAdd(cmd, parsed)
	},
}

// runInteractiveAdd starts the add-book form
func runInteractiveAdd(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	if author, _ := cmd.Flags().GetString("author"); author != "" {
		prefilled["author"] = author
	}
	if pages, _ := cmd.Flags().GetInt("pages"); pages > 0 {
		prefilled["pages"] = strconv.Itoa(pages)
	}
	if year, _ := cmd.Flags().GetInt("year"); year > 0 {
		prefilled["year"] = strconv.Itoa(year)
	}
	if isbn, _ := cmd.Flags().GetString("isbn"); isbn != "" {
		prefilled["isbn"] = isbn
	}
	if publisher, _ := cmd.Flags().GetString("publisher"); publisher != "" {
		prefilled["publisher"] = publisher
	}
	if note, _ := cmd.Flags().GetString("note"); note != "" {
		prefilled["note"] = note
	}

	if err := tui.RunAddBookTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runInteractiveAddWithParsed starts the form pre-filled from smart parsing
func runInteractiveAddWithParsed(parsed parser.ParsedBook) {
	prefilled := make(map[string]string)
	prefilled["title"] = parsed.Title

	if parsed.Author != "" {
		prefilled["author"] = parsed.Author
	}
	if parsed.Pages > 0 {
		prefilled["pages"] = strconv.Itoa(parsed.Pages)
	}
	if parsed.Year > 0 {
		prefilled["year"] = strconv.Itoa(parsed.Year)
	}
	if parsed.ISBN != "" {
		prefilled["isbn"] = parsed.ISBN
	}
	if parsed.Publisher != "" {
		prefilled["publisher"] = parsed.Publisher
	}

	if err := tui.RunAddBookTUI(store, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runDirectAdd creates the book without the TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedBook) {
	req := db.CreateBookRequest{
		Title:      parsed.Title,
		Author:     parsed.Author,
		TotalPages: parsed.Pages,
		ISBN:       parsed.ISBN,
		Publisher:  parsed.Publisher,
		Year:       parsed.Year,
	}

	// Explicit flags take precedence over parsed values
	if author, _ := cmd.Flags().GetString("author"); author != "" {
		req.Author = author
	}
	if pages, _ := cmd.Flags().GetInt("pages"); pages > 0 {
		req.TotalPages = pages
	}
	if year, _ := cmd.Flags().GetInt("year"); year > 0 {
		req.Year = year
	}
	if isbn, _ := cmd.Flags().GetString("isbn"); isbn != "" {
		normalized, err := parser.NormalizeISBN(isbn)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		req.ISBN = normalized
	}
	if publisher, _ := cmd.Flags().GetString("publisher"); publisher != "" {
		req.Publisher = publisher
	}
	if note, _ := cmd.Flags().GetString("note"); note != "" {
		req.Note = note
	}

	book, err := store.CreateBook(req)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}

	fmt.Printf("📚 Added book #%d: %s\n", book.ID, book.Title)
	if book.Author != "" {
		fmt.Printf("  Author: %s\n", book.Author)
	}
	if book.TotalPages > 0 {
		fmt.Printf("  Pages: %d\n", book.TotalPages)
	}
	if book.Year > 0 {
		fmt.Printf("  Year: %d\n", book.Year)
	}
	if book.ISBN != "" {
		fmt.Printf("  ISBN: %s\n", book.ISBN)
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("author", "a", "", "Author name")
	addCmd.Flags().IntP("pages", "p", 0, "Total page count")
	addCmd.Flags().Int("year", 0, "Publication year")
	addCmd.Flags().String("isbn", "", "ISBN (10 or 13 digits)")
	addCmd.Flags().String("publisher", "", "Publisher")
	addCmd.Flags().String("note", "", "Additional notes")
}
