package qmcgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Searches may run candidate scans on several goroutines, so
// implementations must be safe for concurrent use.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(kind string, evaluations int64, duration time.Duration, err error) {
//	    p.searchCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSearch is called after each generator search.
	// kind names the scan (e.g. "exhaust", "korobov-random"),
	// evaluations is the number of candidates evaluated, duration is
	// the total time taken, err is nil if successful.
	RecordSearch(kind string, evaluations int64, duration time.Duration, err error)

	// RecordImprovement is called each time a scan finds a candidate
	// better than its running best.
	RecordImprovement(value float64)

	// RecordPrecisionLoss is called each time a kernel evaluation
	// reports loss of precision and the candidate is skipped.
	RecordPrecisionLoss()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(string, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordImprovement(float64)                        {}
func (NoopMetricsCollector) RecordPrecisionLoss()                             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	Evaluations      atomic.Int64
	Improvements     atomic.Int64
	PrecisionLosses  atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(kind string, evaluations int64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.Evaluations.Add(evaluations)
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordImprovement implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImprovement(value float64) {
	b.Improvements.Add(1)
}

// RecordPrecisionLoss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrecisionLoss() {
	b.PrecisionLosses.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:     b.SearchCount.Load(),
		SearchErrors:    b.SearchErrors.Load(),
		SearchAvgNanos:  b.getAvgSearchNanos(),
		Evaluations:     b.Evaluations.Load(),
		Improvements:    b.Improvements.Load(),
		PrecisionLosses: b.PrecisionLosses.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount     int64
	SearchErrors    int64
	SearchAvgNanos  int64
	Evaluations     int64
	Improvements    int64
	PrecisionLosses int64
}
