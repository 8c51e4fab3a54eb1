package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shelf/internal/version"
)

// ItemsClient fetches the item collection from a shelf server.
// A fetch is a single fire-and-forget GET: transport failures, non-2xx
// statuses, and malformed bodies all surface as one error kind.
type ItemsClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080")
func New(baseURL string) *ItemsClient {
	return &ItemsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// FetchItems performs one GET /api/items and decodes the JSON array of strings
func (c *ItemsClient) FetchItems(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/items", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch failed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	var found []string
	if err := json.Unmarshal(body, &found); err != nil {
		return nil, fmt.Errorf("fetch failed: malformed response body: %w", err)
	}

	return found, nil
}
