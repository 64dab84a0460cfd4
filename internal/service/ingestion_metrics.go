package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about one roster ingestion run
type IngestionMetrics struct {
	mu               sync.RWMutex
	Source           string
	StartTime        time.Time
	Duration         time.Duration
	TotalFighters    int
	StoredFighters   int
	Duplicates       int
	ValidationErrors int
	Warnings         int
}

// NewIngestionMetrics creates a new metrics tracker
func NewIngestionMetrics(source string) *IngestionMetrics {
	return &IngestionMetrics{
		Source:    source,
		StartTime: time.Now(),
	}
}

// RecordFetched sets the number of records the source returned
func (m *IngestionMetrics) RecordFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalFighters = n
}

// RecordValidationError increments the rejected record count
func (m *IngestionMetrics) RecordValidationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationErrors++
}

// RecordWarnings adds to the degraded statistic count
func (m *IngestionMetrics) RecordWarnings(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Warnings += n
}

// RecordStored sets the stored count and derives duplicates from what was offered
func (m *IngestionMetrics) RecordStored(offered, stored int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoredFighters = stored
	m.Duplicates = offered - stored
}

// Finish stamps the run duration
func (m *IngestionMetrics) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duration = time.Since(m.StartTime)
}

// Skipped returns how many fetched records were not stored
func (m *IngestionMetrics) Skipped() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.TotalFighters - m.StoredFighters
}

// String returns a formatted string of the metrics
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf(
		"Ingestion from %s: %d fetched, %d stored, %d duplicates, %d invalid, %d warnings in %v",
		m.Source, m.TotalFighters, m.StoredFighters, m.Duplicates, m.ValidationErrors, m.Warnings, m.Duration,
	)
}
