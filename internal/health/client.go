package health

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIURL is the local development endpoint of the activity API.
const DefaultAPIURL = "http://localhost:5009"

const maxResponseBytes = 8 << 20

// Client fetches daily activity records from the HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	displayURL string
}

// NewClient creates a client for the given API base URL.
func NewClient(apiURL string) (*Client, error) {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported api url scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("api url is missing a host")
	}

	return &Client{
		httpClient: &http.Client{
			// Short timeout to fail fast; the UI treats a failed fetch as
			// an empty result set, not a fatal error.
			Timeout: 5 * time.Second,
		},
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		displayURL: sanitizeAPIURL(parsed),
	}, nil
}

// DisplayURL returns a credential-free URL safe for display.
func (c *Client) DisplayURL() string {
	return c.displayURL
}

func sanitizeAPIURL(parsed *url.URL) string {
	sanitized := *parsed
	if sanitized.User != nil {
		username := sanitized.User.Username()
		if username == "" {
			sanitized.User = nil
		} else {
			sanitized.User = url.User(username)
		}
	}
	return strings.TrimRight(sanitized.String(), "/")
}

// recordsPayload mirrors the API response envelope.
type recordsPayload struct {
	Data []map[string]any `json:"data"`
}

// FetchRecords retrieves the full record list in a single request. Entries
// are normalized on the way in; entries without a usable date are dropped.
// The caller decides how to surface errors; downstream aggregation always
// works off a well-defined (possibly empty) slice.
func (c *Client) FetchRecords(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health-data", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch records: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload recordsPayload
	if err := decodeJSON(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]Record, 0, len(payload.Data))
	for _, entry := range payload.Data {
		if record, ok := normalizeRecord(entry); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// decodeJSON decodes JSON while preserving numbers as json.Number.
// It mirrors json.Unmarshal by rejecting trailing non-whitespace data.
func decodeJSON(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra JSON input")
	}
	return nil
}
