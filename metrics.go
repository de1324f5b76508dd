package intern

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package prom for a ready-made adapter).
type MetricsCollector interface {
	// RecordIntern is called after each intern operation.
	// hit reports whether an existing handle was returned, err is non-nil on overflow.
	RecordIntern(hit bool, err error)

	// RecordRemove is called after each removal attempt.
	// found is false when the handle or value was not present.
	RecordRemove(found bool)

	// RecordClear is called after Clear with the number of values dropped.
	RecordClear(dropped int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIntern(bool, error) {}
func (NoopMetricsCollector) RecordRemove(bool)        {}
func (NoopMetricsCollector) RecordClear(int)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InternHits      atomic.Int64
	InternMisses    atomic.Int64
	InternOverflows atomic.Int64
	RemoveCount     atomic.Int64
	RemoveMisses    atomic.Int64
	ClearCount      atomic.Int64
	ClearedValues   atomic.Int64
}

// RecordIntern implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntern(hit bool, err error) {
	switch {
	case err != nil:
		b.InternOverflows.Add(1)
	case hit:
		b.InternHits.Add(1)
	default:
		b.InternMisses.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	if found {
		b.RemoveCount.Add(1)
		return
	}
	b.RemoveMisses.Add(1)
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(dropped int) {
	b.ClearCount.Add(1)
	b.ClearedValues.Add(int64(dropped))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InternHits:      b.InternHits.Load(),
		InternMisses:    b.InternMisses.Load(),
		InternOverflows: b.InternOverflows.Load(),
		HitRatio:        b.hitRatio(),
		RemoveCount:     b.RemoveCount.Load(),
		RemoveMisses:    b.RemoveMisses.Load(),
		ClearCount:      b.ClearCount.Load(),
		ClearedValues:   b.ClearedValues.Load(),
	}
}

func (b *BasicMetricsCollector) hitRatio() float64 {
	hits := b.InternHits.Load()
	total := hits + b.InternMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InternHits      int64
	InternMisses    int64
	InternOverflows int64
	HitRatio        float64
	RemoveCount     int64
	RemoveMisses    int64
	ClearCount      int64
	ClearedValues   int64
}
