package qmcgo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordSearch("exhaust", 100, 2*time.Millisecond, nil)
	m.RecordSearch("random", 50, 4*time.Millisecond, errors.New("boom"))
	m.RecordImprovement(0.25)
	m.RecordImprovement(0.125)
	m.RecordPrecisionLoss()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(150), stats.Evaluations)
	assert.Equal(t, int64(2), stats.Improvements)
	assert.Equal(t, int64(1), stats.PrecisionLosses)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.SearchAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}

	// Must not panic.
	m.RecordSearch("exhaust", 1, time.Millisecond, nil)
	m.RecordImprovement(1.0)
	m.RecordPrecisionLoss()
}
