package containers

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    reserved prometheus.Counter
//	    refused  prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordReserve(bytes int64, err error) {
//	    if err != nil {
//	        p.refused.Inc()
//	        return
//	    }
//	    p.reserved.Add(float64(bytes))
//	}
type MetricsCollector interface {
	// RecordReserve is called after each memory reservation.
	// err is nil if the budget granted the bytes.
	RecordReserve(bytes int64, err error)

	// RecordRelease is called after bytes are returned to the budget.
	RecordRelease(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReserve(int64, error) {}
func (NoopMetricsCollector) RecordRelease(int64)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReserveCount  atomic.Int64
	ReserveErrors atomic.Int64
	ReservedBytes atomic.Int64
	ReleaseCount  atomic.Int64
	ReleasedBytes atomic.Int64
	PeakBytes     atomic.Int64
}

// RecordReserve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReserve(bytes int64, err error) {
	b.ReserveCount.Add(1)
	if err != nil {
		b.ReserveErrors.Add(1)
		return
	}
	reserved := b.ReservedBytes.Add(bytes)
	b.updatePeak(reserved - b.ReleasedBytes.Load())
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int64) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(bytes)
}

func (b *BasicMetricsCollector) updatePeak(inUse int64) {
	for {
		peak := b.PeakBytes.Load()
		if inUse <= peak || b.PeakBytes.CompareAndSwap(peak, inUse) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	reserved := b.ReservedBytes.Load()
	released := b.ReleasedBytes.Load()
	return BasicMetricsStats{
		ReserveCount:  b.ReserveCount.Load(),
		ReserveErrors: b.ReserveErrors.Load(),
		ReservedBytes: reserved,
		ReleaseCount:  b.ReleaseCount.Load(),
		ReleasedBytes: released,
		InUseBytes:    reserved - released,
		PeakBytes:     b.PeakBytes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReserveCount  int64
	ReserveErrors int64
	ReservedBytes int64
	ReleaseCount  int64
	ReleasedBytes int64
	InUseBytes    int64
	PeakBytes     int64
}
