// Package nbastats provides an HTTP client for the public stats.nba.com
// endpoints the ingestion pipeline reads.
//
// Every endpoint answers with a "resultSets" envelope of header names plus
// positional row arrays; the client turns each named set into provider.Rows.
// The API is unauthenticated but rejects requests that lack browser-like
// headers. Pacing between calls is the caller's job.
package nbastats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

// DefaultBaseURL is the public stats endpoint root.
const DefaultBaseURL = "https://stats.nba.com/stats"

var (
	// ErrNoResultSet means the response decoded but lacked the expected set.
	ErrNoResultSet = errors.New("nbastats: result set missing")
	// ErrPlayerNotFound means the player info set came back empty.
	ErrPlayerNotFound = errors.New("nbastats: player not found")
)

// Client is the shared HTTP client for all stats endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a stats client. A zero timeout falls back to 30s.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// resultSet is one named table inside a stats response.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// envelope covers both the plural and singular spellings the API uses.
type envelope struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

// find returns the set called name, or the first set when name is empty.
func (e *envelope) find(name string) (*resultSet, bool) {
	sets := e.ResultSets
	if e.ResultSet != nil {
		sets = append(sets, *e.ResultSet)
	}
	for i := range sets {
		if name == "" || sets[i].Name == name {
			return &sets[i], true
		}
	}
	return nil, false
}

// rows zips headers with each positional row.
func (s *resultSet) rows() provider.Rows {
	out := make(provider.Rows, 0, len(s.RowSet))
	for _, raw := range s.RowSet {
		row := make(provider.Row, len(s.Headers))
		for i, h := range s.Headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = nil
			}
		}
		out = append(out, row)
	}
	return out
}

// get performs a GET against a stats endpoint and decodes the envelope.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*envelope, error) {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	c.logger.Debug("stats request", "endpoint", endpoint, "params", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats %s returned %d: %s", endpoint, resp.StatusCode, truncate(body, 200))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return &env, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
