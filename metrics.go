package passage

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    locateCounter   prometheus.Counter
//	    locateHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordLocate(tier passage.Tier, duration time.Duration, err error) {
//	    p.locateCounter.Inc()
//	    // ... record tier, duration, error state, etc.
//	}
type MetricsCollector interface {
	// RecordLocate is called after each locate call. tier is TierNone
	// when no match was found, duration is the total time taken, err is
	// nil unless the quote was rejected.
	RecordLocate(tier Tier, duration time.Duration, err error)

	// RecordResolve is called after each report resolution. issues is
	// the number of issues attempted, located is how many produced a
	// match, duration is the total time taken.
	RecordResolve(issues, located int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLocate(Tier, time.Duration, error) {}
func (NoopMetricsCollector) RecordResolve(int, int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LocateCount      atomic.Int64
	LocateErrors     atomic.Int64
	LocateTotalNanos atomic.Int64
	ExactHits        atomic.Int64
	NormalizedHits   atomic.Int64
	PrefixHits       atomic.Int64
	Misses           atomic.Int64
	ResolveCount     atomic.Int64
	ResolveIssues    atomic.Int64
	ResolveLocated   atomic.Int64
}

// RecordLocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLocate(tier Tier, duration time.Duration, err error) {
	b.LocateCount.Add(1)
	b.LocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LocateErrors.Add(1)
		return
	}

	switch tier {
	case TierExact:
		b.ExactHits.Add(1)
	case TierNormalized:
		b.NormalizedHits.Add(1)
	case TierPrefix:
		b.PrefixHits.Add(1)
	default:
		b.Misses.Add(1)
	}
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(issues, located int, duration time.Duration) {
	b.ResolveCount.Add(1)
	b.ResolveIssues.Add(int64(issues))
	b.ResolveLocated.Add(int64(located))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LocateCount:    b.LocateCount.Load(),
		LocateErrors:   b.LocateErrors.Load(),
		LocateAvgNanos: b.getAvgLocateNanos(),
		ExactHits:      b.ExactHits.Load(),
		NormalizedHits: b.NormalizedHits.Load(),
		PrefixHits:     b.PrefixHits.Load(),
		Misses:         b.Misses.Load(),
		ResolveCount:   b.ResolveCount.Load(),
		ResolveIssues:  b.ResolveIssues.Load(),
		ResolveLocated: b.ResolveLocated.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLocateNanos() int64 {
	count := b.LocateCount.Load()
	if count == 0 {
		return 0
	}
	return b.LocateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LocateCount    int64
	LocateErrors   int64
	LocateAvgNanos int64
	ExactHits      int64
	NormalizedHits int64
	PrefixHits     int64
	Misses         int64
	ResolveCount   int64
	ResolveIssues  int64
	ResolveLocated int64
}
