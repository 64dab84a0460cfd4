package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/yourusername/fight-predictor/internal/models"
)

const httpSourceName = "http"

// HTTPSource downloads a roster JSON array from a URL.
type HTTPSource struct {
	httpClient *RateLimitedHTTPClient
	url        string
}

// NewHTTPSource creates a source fetching url through httpClient.
func NewHTTPSource(httpClient *RateLimitedHTTPClient, url string) *HTTPSource {
	return &HTTPSource{httpClient: httpClient, url: url}
}

// Name returns the name of the data source
func (s *HTTPSource) Name() string {
	return httpSourceName
}

// FetchFighters downloads and decodes the roster.
func (s *HTTPSource) FetchFighters(ctx context.Context) ([]models.Fighter, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, NewDataSourceError(httpSourceName, ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewDataSourceError(httpSourceName, ErrCodeNetworkError, "failed to fetch roster", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewDataSourceError(httpSourceName, ErrCodeAuthenticationFailed, "roster access denied", nil)
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewDataSourceError(httpSourceName, ErrCodeNotFound, "roster not found", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewDataSourceError(httpSourceName, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewDataSourceError(httpSourceName, ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	return decodeRoster(httpSourceName, resp.Body)
}
