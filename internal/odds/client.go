package odds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yourusername/fight-predictor/internal/datasource"
	"github.com/yourusername/fight-predictor/internal/models"
)

const (
	// DefaultBaseURL is The Odds API v4 root.
	DefaultBaseURL = "https://api.the-odds-api.com/v4"
	sportKey       = "mma_mixed_martial_arts"
	usageUnknown   = "Unknown"
)

// Client talks to The Odds API.
type Client struct {
	httpClient *datasource.RateLimitedHTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a client. An empty baseURL uses DefaultBaseURL.
func NewClient(httpClient *datasource.RateLimitedHTTPClient, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

func (c *Client) oddsURL(withFormat bool) string {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("regions", "us")
	q.Set("markets", headToHead)
	if withFormat {
		q.Set("oddsFormat", "american")
	}
	return fmt.Sprintf("%s/sports/%s/odds/?%s", c.baseURL, sportKey, q.Encode())
}

// FetchEvents downloads the upcoming MMA board with American prices. The usage headers of
// the response are returned alongside.
func (c *Client) FetchEvents(ctx context.Context) ([]Event, models.APIUsage, error) {
	if !c.HasKey() {
		return nil, models.APIUsage{}, ErrAPIKeyMissing
	}

	resp, err := c.httpClient.Get(ctx, c.oddsURL(true))
	if err != nil {
		return nil, models.APIUsage{}, fmt.Errorf("%w: %v", ErrOddsUnavailable, err)
	}
	defer resp.Body.Close()

	usage := usageFromHeaders(resp.Header)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, usage, fmt.Errorf("%w: status %d: %s", ErrOddsUnavailable, resp.StatusCode, string(body))
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, usage, fmt.Errorf("%w: failed to decode events: %v", ErrOddsUnavailable, err)
	}
	return events, usage, nil
}

// Usage issues a lightweight request and reports the remaining quota.
func (c *Client) Usage(ctx context.Context) (models.APIUsage, error) {
	if !c.HasKey() {
		return models.APIUsage{}, ErrAPIKeyMissing
	}

	resp, err := c.httpClient.Get(ctx, c.oddsURL(false))
	if err != nil {
		return models.APIUsage{}, fmt.Errorf("%w: %v", ErrOddsUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return usageFromHeaders(resp.Header), nil
}

func usageFromHeaders(h http.Header) models.APIUsage {
	usage := models.APIUsage{
		Remaining: h.Get("x-requests-remaining"),
		Used:      h.Get("x-requests-used"),
	}
	if usage.Remaining == "" {
		usage.Remaining = usageUnknown
	}
	if usage.Used == "" {
		usage.Used = usageUnknown
	}
	return usage
}
