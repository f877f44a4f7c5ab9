// Package bibletv provides a client for the Bibel TV passage search API.
package bibletv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// ContentItem is one entry of a passage search result. Items of type "verse"
// carry the verse number and text; other types (headings, footnotes) are
// skipped by callers.
type ContentItem struct {
	Type        string `json:"type"`
	VerseNumber int    `json:"verse_number,omitempty"`
	Content     string `json:"content,omitempty"`
}

// SearchResponse is the passage search response: content items grouped by
// translation abbreviation, plus an opaque session-continuation token the
// service expects echoed on subsequent calls.
type SearchResponse struct {
	Session string                   `json:"session,omitempty"`
	Content map[string][]ContentItem `json:"content"`
}

// Verses extracts the verse items of one translation as a number-to-text map.
func (r *SearchResponse) Verses(translation string) map[int]string {
	verses := map[int]string{}
	for _, item := range r.Content[translation] {
		if item.Type == "verse" {
			verses[item.VerseNumber] = item.Content
		}
	}
	return verses
}

// Client calls the Bibel TV search endpoint. It remembers the session token
// returned by the service and echoes it on subsequent requests.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu      sync.Mutex
	session string
}

// New creates a new Bibel TV client.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// FetchPassage fetches the text of a passage query (e.g. "Genesis 1") in the
// given translation abbreviation.
func (c *Client) FetchPassage(ctx context.Context, query, translation string) (*SearchResponse, error) {
	endpoint, err := url.Parse(c.baseURL + "/search.json")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("translation", translation)
	c.mu.Lock()
	if c.session != "" {
		params.Set("session", c.session)
	}
	c.mu.Unlock()
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call passage search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("passage search error %d: %s", resp.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if searchResp.Session != "" {
		c.mu.Lock()
		c.session = searchResp.Session
		c.mu.Unlock()
	}
	return &searchResp, nil
}
