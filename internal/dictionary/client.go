package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound reports that the API knows no entry for the word. It is an
// expected outcome, not a failure; callers route it to the suggestion flow.
var ErrNotFound = errors.New("dictionary: word not found")

// StatusError is returned for non-404 non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary: unexpected status %d", e.Code)
}

// Client fetches entries from a dictionaryapi.dev-compatible endpoint.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a Client. timeout bounds each Lookup round trip.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Lookup issues a single GET {baseURL}{word} and returns the first entry.
// A 404 maps to ErrNotFound, other non-2xx statuses to *StatusError.
// No retries; transport and decode failures are wrapped and returned.
func (c *Client) Lookup(ctx context.Context, word string) (*Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(word), nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary: build request for %q: %w", word, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictionary: fetch %q: %w", word, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("dictionary: decode response for %q: %w", word, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary: empty result set for %q", word)
	}

	return &entries[0], nil
}
