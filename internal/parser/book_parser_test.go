package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBook(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedBook
	}{
		{
			name:  "title only",
			input: "Dune",
			want:  ParsedBook{Title: "Dune", Errors: []string{}},
		},
		{
			name:  "full syntax",
			input: "Dune @Frank Herbert pages:412 year:1965 isbn:9780441172719 pub:Ace",
			want: ParsedBook{
				Title:     "Dune",
				Author:    "Frank Herbert",
				Pages:     412,
				Year:      1965,
				ISBN:      "9780441172719",
				Publisher: "Ace",
				Errors:    []string{},
			},
		},
		{
			name:  "multi word title and author",
			input: "The Left Hand of Darkness @Ursula K. Le Guin pages:304",
			want: ParsedBook{
				Title:  "The Left Hand of Darkness",
				Author: "Ursula K. Le Guin",
				Pages:  304,
				Errors: []string{},
			},
		},
		{
			name:  "marker ends author run",
			input: "Dune @Frank Herbert pages:412 Messiah",
			want: ParsedBook{
				Title:  "Dune Messiah",
				Author: "Frank Herbert",
				Pages:  412,
				Errors: []string{},
			},
		},
		{
			name:  "isbn with dashes",
			input: "Dune isbn:978-0-441-17271-9",
			want:  ParsedBook{Title: "Dune", ISBN: "9780441172719", Errors: []string{}},
		},
		{
			name:  "marker keys are case insensitive",
			input: "Dune PAGES:412",
			want:  ParsedBook{Title: "Dune", Pages: 412, Errors: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBook(tt.input))
		})
	}
}

func TestParseBookCollectsErrors(t *testing.T) {
	got := ParseBook("Dune pages:lots year:-5 isbn:banana")

	assert.Equal(t, "Dune", got.Title)
	assert.Zero(t, got.Pages)
	assert.Zero(t, got.Year)
	assert.Empty(t, got.ISBN)
	assert.Len(t, got.Errors, 3)
}
