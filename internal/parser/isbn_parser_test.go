package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty is allowed", "", ""},
		{"isbn-13", "9780441172719", "9780441172719"},
		{"isbn-13 with dashes", "978-0-441-17271-9", "9780441172719"},
		{"isbn-10", "0441172717", "0441172717"},
		{"isbn-10 with X check digit", "043942089X", "043942089X"},
		{"lowercase x uppercased", "043942089x", "043942089X"},
		{"spaces stripped", "978 0441 172719", "9780441172719"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeISBN(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeISBNRejects(t *testing.T) {
	for _, input := range []string{"banana", "12345", "97804411727199", "044117271X7"} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeISBN(input)
			assert.Error(t, err)
		})
	}
}

func TestIsValidISBN(t *testing.T) {
	assert.True(t, IsValidISBN(""))
	assert.True(t, IsValidISBN("9780441172719"))
	assert.True(t, IsValidISBN("978-0-441-17271-9"))
	assert.False(t, IsValidISBN("banana"))
}
