package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/service"
)

type countingRefresher struct {
	calls int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	atomic.AddInt32(&r.calls, 1)
	return r.err
}

type countingIngester struct {
	calls int32
}

func (i *countingIngester) Ingest(context.Context) (*service.IngestionMetrics, error) {
	atomic.AddInt32(&i.calls, 1)
	return service.NewIngestionMetrics("static"), nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return log
}

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler(quietLogger())

	assert.Error(t, s.Start(), "start without jobs")
	assert.Error(t, s.ScheduleOddsRefresh("not a cron", &countingRefresher{}))

	require.NoError(t, s.ScheduleOddsRefresh("*/5 * * * *", &countingRefresher{}))
	require.NoError(t, s.ScheduleRosterRefresh("@daily", &countingIngester{}, nil))
	assert.Equal(t, 2, s.JobCount())
	assert.True(t, s.GetNextRun().IsZero())

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.False(t, s.GetNextRun().IsZero())
	assert.Error(t, s.Start())
	assert.Error(t, s.ScheduleOddsRefresh("@hourly", &countingRefresher{}))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop())
}

func TestSchedulerRunsJobs(t *testing.T) {
	s := NewScheduler(quietLogger())

	refresher := &countingRefresher{err: errors.New("feed down")}
	ingester := &countingIngester{}
	var refreshed int32

	require.NoError(t, s.ScheduleOddsRefresh("@every 1s", refresher))
	require.NoError(t, s.ScheduleRosterRefresh("@every 1s", ingester, func() { atomic.AddInt32(&refreshed, 1) }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&refresher.calls) > 0 && atomic.LoadInt32(&refreshed) > 0
	}, 5*time.Second, 50*time.Millisecond)
	assert.Positive(t, atomic.LoadInt32(&ingester.calls))

	cancel()
	assert.NoError(t, <-done)
}
