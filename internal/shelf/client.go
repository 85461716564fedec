// Package shelf talks to an AudioBookShelf server: library rescans, the
// item catalog, and forced metadata matches.
package shelf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// matchProvider is the metadata provider requested for forced matches.
const matchProvider = "audible"

// LibraryAPI is the server surface the pipeline depends on.
type LibraryAPI interface {
	// Scan triggers a library rescan. The response body is not inspected.
	Scan(ctx context.Context) error

	// ListItems returns the library catalog sorted by time added.
	ListItems(ctx context.Context) ([]Item, error)

	// Match forces metadata matching of one item against the Audible
	// provider, using the item's own title, author, and ASIN.
	Match(ctx context.Context, item Item) error
}

// Client is an AudioBookShelf API client with bearer authentication.
type Client struct {
	baseURL    string
	libraryID  string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

var _ LibraryAPI = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "shelf")
	}
}

// New creates a client for one library on one server.
func New(baseURL, libraryID, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		libraryID: libraryID,
		token:     token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scan triggers a rescan of the library.
func (c *Client) Scan(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/libraries/%s/scan", c.baseURL, c.libraryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scan failed with status: %d", resp.StatusCode)
	}

	if c.log != nil {
		c.log.Debug("library scan triggered", "library", c.libraryID)
	}
	return nil
}

// ListItems fetches the library catalog sorted by time added.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	url := fmt.Sprintf("%s/api/libraries/%s/items?sort=addedAt", c.baseURL, c.libraryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result itemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("fetched library items", "count", len(result.Results))
	}
	return result.Results, nil
}

// Match forces metadata matching of the item via the Audible provider.
func (c *Client) Match(ctx context.Context, item Item) error {
	body, err := json.Marshal(matchRequest{
		Author:           item.Media.Metadata.AuthorName,
		Provider:         matchProvider,
		ASIN:             item.Media.Metadata.ASIN,
		Title:            item.Media.Metadata.Title,
		OverrideDefaults: "true",
	})
	if err != nil {
		return fmt.Errorf("marshal match request: %w", err)
	}

	url := fmt.Sprintf("%s/api/items/%s/match", c.baseURL, item.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("match failed with status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
