package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/config"
)

const rosterJSON = `[
  {"name": "Jon Jones", "wins": 27, "losses": 1, "draws": 0, "height": "6' 4\"", "weight": "248 lbs",
   "reach": "84.5\"", "stance": "Orthodox", "sig_strikes_landed_per_min": "4.38", "striking_accuracy": "57%",
   "last_3_fights": [{"result": "W", "opponent": "Stipe Miocic", "method": "KO/TKO", "round": "3"}]},
  {"name": "Stipe Miocic", "wins": 20, "losses": 5, "draws": 0, "weight": "240 lbs"}
]`

func testClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:           2 * time.Second,
		MaxRetries:        2,
		RetryWaitMin:      time.Millisecond,
		RetryWaitMax:      5 * time.Millisecond,
		RateLimit:         0,
		CircuitBreakerMax: 2,
	}
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fighters.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJSONFileSource(t *testing.T) {
	src := NewJSONFileSource(writeRoster(t, rosterJSON))
	assert.Equal(t, "file", src.Name())

	fighters, err := src.FetchFighters(context.Background())
	require.NoError(t, err)
	require.Len(t, fighters, 2)
	assert.Equal(t, "Jon Jones", fighters[0].Name)
	assert.Equal(t, "57%", fighters[0].StrikingAccuracy)
	require.Len(t, fighters[0].LastFights, 1)
	assert.Equal(t, "Stipe Miocic", fighters[0].LastFights[0].Opponent)
}

func TestJSONFileSourceErrors(t *testing.T) {
	_, err := NewJSONFileSource(filepath.Join(t.TempDir(), "missing.json")).FetchFighters(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewJSONFileSource(writeRoster(t, `{"not": "an array"}`)).FetchFighters(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)

	var dsErr DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, "file", dsErr.Source)
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rosterJSON))
	}))
	defer server.Close()

	src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL)
	fighters, err := src.FetchFighters(context.Background())
	require.NoError(t, err)
	assert.Len(t, fighters, 2)
}

func TestHTTPSourceStatusCodes(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{http.StatusUnauthorized, ErrAuthenticationFailed},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTeapot, ErrServerError},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL)
		_, err := src.FetchFighters(context.Background())
		assert.ErrorIs(t, err, tt.expected, "status %d", tt.status)
		server.Close()
	}
}

func TestRateLimitedHTTPClientRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRateLimitedHTTPClient(testClientConfig(), nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRateLimitedHTTPClientCircuitBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRateLimitedHTTPClient(testClientConfig(), nil)
	for i := 0; i < 2; i++ {
		_, err := client.Get(context.Background(), server.URL)
		require.Error(t, err)
	}
	assert.True(t, client.IsOpen())

	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")

	client.Reset()
	assert.False(t, client.IsOpen())
}

func TestNewFighterSource(t *testing.T) {
	src, err := NewFighterSource(config.RosterConfig{Source: config.RosterSourceFile, Path: "fighters.json"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &JSONFileSource{}, src)

	src, err = NewFighterSource(config.RosterConfig{Source: config.RosterSourceHTTP, URL: "http://localhost/f.json"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	_, err = NewFighterSource(config.RosterConfig{Source: config.RosterSourceHTTP}, nil, nil)
	assert.Error(t, err)

	_, err = NewFighterSource(config.RosterConfig{Source: "ftp"}, nil, nil)
	assert.Error(t, err)
}

func TestRosterHTTPClientConfig(t *testing.T) {
	cfg := RosterHTTPClientConfig(config.RosterConfig{TimeoutSeconds: 7, RateLimit: 2})
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, 2.0, cfg.RateLimit)

	defaults := RosterHTTPClientConfig(config.RosterConfig{})
	assert.Equal(t, DefaultHTTPClientConfig(), defaults)
}
