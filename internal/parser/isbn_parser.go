package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var isbnRegex = regexp.MustCompile(`^(\d{9}[\dX]|\d{13})$`)

// NormalizeISBN normalizes an ISBN to bare digits (dashes and spaces
// stripped, check character uppercased). Accepts ISBN-10 and ISBN-13.
// Returns an error if the result is neither.
func NormalizeISBN(isbn string) (string, error) {
	if isbn == "" {
		return "", nil
	}

	cleaned := strings.ToUpper(strings.TrimSpace(isbn))
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if !isbnRegex.MatchString(cleaned) {
		return "", fmt.Errorf("invalid ISBN format. Use 10 or 13 digits")
	}

	return cleaned, nil
}

// IsValidISBN checks whether a string is a plausible ISBN
func IsValidISBN(isbn string) bool {
	if isbn == "" {
		return true // Empty is valid (optional field)
	}

	_, err := NormalizeISBN(isbn)
	return err == nil
}
