package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "dune", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "pagestreak-cli", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"docs": [
				{
					"title": "Dune",
					"author_name": ["Frank Herbert", "Someone Else"],
					"first_publish_year": 1965,
					"number_of_pages_median": 412,
					"isbn": ["9780441172719", "0441172717"],
					"cover_i": 11481354,
					"publisher": ["Ace Books"]
				},
				{
					"title": "Dune Messiah"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	docs, err := client.Search(context.Background(), "dune", 5)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	dune := docs[0]
	assert.Equal(t, "Dune", dune.Title)
	assert.Equal(t, "Frank Herbert", dune.Author())
	assert.Equal(t, 1965, dune.FirstPublishYear)
	assert.Equal(t, 412, dune.MedianPages)
	assert.Equal(t, "9780441172719", dune.ISBN())
	assert.Equal(t, 11481354, dune.CoverID)
	assert.Equal(t, "Ace Books", dune.Publisher())

	// Sparse doc: helpers degrade to empty values
	sparse := docs[1]
	assert.Empty(t, sparse.Author())
	assert.Empty(t, sparse.ISBN())
	assert.Empty(t, sparse.Publisher())
}

func TestSearchDefaultsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	docs, err := client.Search(context.Background(), "dune", 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.Search(context.Background(), "dune", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSearchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.Search(ctx, "dune", 5)
	assert.Error(t, err)
}
