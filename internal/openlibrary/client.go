package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://openlibrary.org"

// Doc is one search result from the Open Library search API
type Doc struct {
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	MedianPages      int      `json:"number_of_pages_median"`
	ISBNs            []string `json:"isbn"`
	CoverID          int      `json:"cover_i"`
	Publishers       []string `json:"publisher"`
}

// Author returns the first listed author, or empty
func (d Doc) Author() string {
	if len(d.AuthorNames) == 0 {
		return ""
	}
	return d.AuthorNames[0]
}

// ISBN returns the first listed ISBN, or empty
func (d Doc) ISBN() string {
	if len(d.ISBNs) == 0 {
		return ""
	}
	return d.ISBNs[0]
}

// Publisher returns the first listed publisher, or empty
func (d Doc) Publisher() string {
	if len(d.Publishers) == 0 {
		return ""
	}
	return d.Publishers[0]
}

// Client queries the Open Library search API for book metadata
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the public Open Library API
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Search runs a full-text search and returns up to limit matching docs
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Doc, error) {
	if limit <= 0 {
		limit = 10
	}

	u := fmt.Sprintf("%s/search.json?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "pagestreak-cli")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open library request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open library returned status %d", resp.StatusCode)
	}

	var body struct {
		Docs []Doc `json:"docs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode open library response: %w", err)
	}

	return body.Docs, nil
}
