package odds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/datasource"
	"github.com/yourusername/fight-predictor/internal/models"
)

const boardJSON = `[
  {"id": "e1", "sport_key": "mma_mixed_martial_arts", "commence_time": "2024-07-06T22:00:00Z",
   "home_team": "Alex Pereira", "away_team": "Jiri Prochazka",
   "bookmakers": [{"key": "draftkings", "title": "DraftKings", "markets": [
     {"key": "h2h", "outcomes": [{"name": "Alex Pereira", "price": -150}, {"name": "Jiri Prochazka", "price": 150}]}
   ]}]},
  {"id": "e2", "sport_key": "mma_mixed_martial_arts", "commence_time": "2024-07-06T21:00:00Z",
   "home_team": "Empty Market", "away_team": "Nobody", "bookmakers": []}
]`

func testHTTPClient() *datasource.RateLimitedHTTPClient {
	return datasource.NewRateLimitedHTTPClient(datasource.HTTPClientConfig{
		Timeout:           2 * time.Second,
		MaxRetries:        0,
		RetryWaitMin:      time.Millisecond,
		RetryWaitMax:      time.Millisecond,
		CircuitBreakerMax: 10,
	}, nil)
}

func boardServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/sports/mma_mixed_martial_arts/odds/", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "h2h", r.URL.Query().Get("markets"))
		w.Header().Set("x-requests-remaining", "480")
		w.Header().Set("x-requests-used", "20")
		_, _ = w.Write([]byte(boardJSON))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		american int
		expected string
	}{
		{150, "2.5"},
		{-150, "1.67"},
		{100, "2"},
		{-100, "2"},
		{-300, "1.33"},
	}

	for _, tt := range tests {
		got, err := AmericanToDecimal(tt.american)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got.String(), "american %d", tt.american)
	}

	_, err := AmericanToDecimal(0)
	assert.Error(t, err)
}

func TestAmericanToImpliedProbability(t *testing.T) {
	tests := []struct {
		american int
		expected string
	}{
		{150, "40"},
		{-150, "60"},
		{-110, "52.4"},
		{200, "33.3"},
	}

	for _, tt := range tests {
		got, err := AmericanToImpliedProbability(tt.american)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got.String(), "american %d", tt.american)
	}

	_, err := AmericanToImpliedProbability(0)
	assert.Error(t, err)
}

func TestCacheExpiry(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(5*time.Minute, func() time.Time { return now })

	_, ok := cache.Get()
	assert.False(t, ok)

	cache.Set([]Event{{ID: "e1"}})
	events, ok := cache.Get()
	require.True(t, ok)
	assert.Len(t, events, 1)

	now = now.Add(4*time.Minute + 59*time.Second)
	_, ok = cache.Get()
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = cache.Get()
	assert.False(t, ok)
}

func TestCacheEmptyBoardIsCached(t *testing.T) {
	cache := NewCache(time.Minute, nil)
	cache.Set(nil)

	events, ok := cache.Get()
	assert.True(t, ok)
	assert.Empty(t, events)

	cache.Invalidate()
	_, ok = cache.Get()
	assert.False(t, ok)
}

func TestFindInEvents(t *testing.T) {
	server := boardServer(t, new(int32))
	events, _, err := NewClient(testHTTPClient(), server.URL, "test-key").FetchEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	t.Run("same order", func(t *testing.T) {
		odds := FindInEvents(events, "Alex Pereira", "Jiri Prochazka")
		require.True(t, odds.Found)
		assert.Equal(t, "Alex Pereira vs Jiri Prochazka", odds.EventName)
		assert.Equal(t, "DraftKings", odds.Bookmaker)
		assert.Equal(t, -150, odds.Fighter1.AmericanOdds)
		assert.Equal(t, 1.67, odds.Fighter1.DecimalOdds)
		assert.Equal(t, 60.0, odds.Fighter1.ImpliedProbability)
		assert.Equal(t, 2.5, odds.Fighter2.DecimalOdds)
		assert.Equal(t, 40.0, odds.Fighter2.ImpliedProbability)
	})

	t.Run("reversed order and partial names", func(t *testing.T) {
		odds := FindInEvents(events, "  PROCHAZKA ", "pereira")
		require.True(t, odds.Found)
		assert.Equal(t, "Jiri Prochazka", odds.Fighter1.Name)
		assert.Equal(t, 150, odds.Fighter1.AmericanOdds)
		assert.Equal(t, "Alex Pereira", odds.Fighter2.Name)
	})

	t.Run("not found", func(t *testing.T) {
		odds := FindInEvents(events, "Jon Jones", "Stipe Miocic")
		assert.False(t, odds.Found)
		assert.Empty(t, odds.EventName)
	})
}

func TestFindInEventsSkipsMalformedMarkets(t *testing.T) {
	events := []Event{{
		HomeTeam: "A", AwayTeam: "B",
		Bookmakers: []Bookmaker{{Title: "Book", Markets: []Market{
			{Key: "h2h", Outcomes: []Outcome{{Name: "A", Price: 100}, {Name: "B", Price: -120}, {Name: "Draw", Price: 2000}}},
		}}},
	}}
	assert.False(t, FindInEvents(events, "A", "B").Found)
}

func TestServiceCachesBoard(t *testing.T) {
	var calls int32
	server := boardServer(t, &calls)

	svc := NewService(NewClient(testHTTPClient(), server.URL, "test-key"), NewCache(time.Minute, nil), nil)
	require.True(t, svc.Enabled())

	for i := 0; i < 3; i++ {
		odds, err := svc.FindFightOdds(context.Background(), "Alex Pereira", "Jiri Prochazka")
		require.NoError(t, err)
		assert.True(t, odds.Found)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestServiceWithoutKey(t *testing.T) {
	svc := NewService(NewClient(testHTTPClient(), "", ""), nil, nil)
	assert.False(t, svc.Enabled())

	odds, err := svc.FindFightOdds(context.Background(), "A", "B")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.False(t, odds.Found)
	assert.True(t, IsUnavailable(err))

	_, err = svc.CheckUsage(context.Background())
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestServiceUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewService(NewClient(testHTTPClient(), server.URL, "bad-key"), nil, nil)
	_, err := svc.FindFightOdds(context.Background(), "A", "B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOddsUnavailable))
}

func TestCheckUsage(t *testing.T) {
	server := boardServer(t, new(int32))
	svc := NewService(NewClient(testHTTPClient(), server.URL, "test-key"), nil, nil)

	usage, err := svc.CheckUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "480", usage.Remaining)
	assert.Equal(t, "20", usage.Used)
}

func TestUsageDefaultsToUnknown(t *testing.T) {
	usage := usageFromHeaders(http.Header{})
	assert.Equal(t, "Unknown", usage.Remaining)
	assert.Equal(t, "Unknown", usage.Used)
}

func TestCompare(t *testing.T) {
	p := &models.Prediction{
		Fighter1: models.FighterAnalysis{Name: "Alex Pereira", WinProbability: 63.0},
		Fighter2: models.FighterAnalysis{Name: "Jiri Prochazka", WinProbability: 37.0},
	}
	fight := models.FightOdds{
		Found:    true,
		Fighter1: models.FighterOdds{ImpliedProbability: 60.0},
		Fighter2: models.FighterOdds{ImpliedProbability: 40.0},
	}

	cmp := Compare(p, fight)
	assert.Equal(t, AssessmentAligned, cmp.Fighter1.Assessment)
	assert.InDelta(t, 3.0, cmp.Fighter1.Difference, 1e-9)
	assert.InDelta(t, -3.0, cmp.Fighter2.Difference, 1e-9)

	assert.Equal(t, models.OddsComparison{}, Compare(p, models.FightOdds{Found: false}))
}

func TestAssess(t *testing.T) {
	assert.Equal(t, AssessmentAligned, Assess(4.9))
	assert.Equal(t, AssessmentSlight, Assess(5))
	assert.Equal(t, AssessmentSlight, Assess(9.9))
	assert.Equal(t, AssessmentSignificant, Assess(10))
}
