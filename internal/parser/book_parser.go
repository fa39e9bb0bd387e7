package parser

import (
	"strconv"
	"strings"
)

// ParsedBook represents a book parsed from natural add syntax
type ParsedBook struct {
	Title     string
	Author    string
	Pages     int
	Year      int
	ISBN      string
	Publisher string
	Errors    []string
}

// ParseBook extracts metadata from an add line using natural syntax
// Syntax: "Book title @Author Name pages:412 year:1965 isbn:9780441172719"
// The author runs from @ to the next marker token or end of line.
func ParseBook(input string) ParsedBook {
	result := ParsedBook{Errors: []string{}}

	var title, author []string
	inAuthor := false

	for _, token := range strings.Fields(input) {
		key, value, isMarker := splitMarker(token)
		if isMarker {
			inAuthor = false
			switch key {
			case "pages":
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					result.Errors = append(result.Errors, "Invalid page count '"+value+"'")
				} else {
					result.Pages = n
				}
			case "year":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					result.Errors = append(result.Errors, "Invalid year '"+value+"'")
				} else {
					result.Year = n
				}
			case "isbn":
				normalized, err := NormalizeISBN(value)
				if err != nil {
					result.Errors = append(result.Errors, "Invalid ISBN '"+value+"'")
				} else {
					result.ISBN = normalized
				}
			case "pub":
				result.Publisher = value
			}
			continue
		}

		if strings.HasPrefix(token, "@") {
			inAuthor = true
			if name := strings.TrimPrefix(token, "@"); name != "" {
				author = append(author, name)
			}
			continue
		}

		if inAuthor {
			author = append(author, token)
		} else {
			title = append(title, token)
		}
	}

	result.Title = strings.Join(title, " ")
	result.Author = strings.Join(author, " ")

	return result
}

// splitMarker recognizes key:value tokens used by the add syntax
func splitMarker(token string) (key, value string, ok bool) {
	i := strings.Index(token, ":")
	if i <= 0 {
		return "", "", false
	}

	key = strings.ToLower(token[:i])
	switch key {
	case "pages", "year", "isbn", "pub":
		return key, token[i+1:], true
	}
	return "", "", false
}
