package containers

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var mc BasicMetricsCollector

	mc.RecordReserve(100, nil)
	mc.RecordReserve(50, nil)
	mc.RecordReserve(1000, errors.New("refused"))
	mc.RecordRelease(120)
	mc.RecordReserve(10, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.ReserveCount)
	assert.Equal(t, int64(1), stats.ReserveErrors)
	assert.Equal(t, int64(160), stats.ReservedBytes)
	assert.Equal(t, int64(1), stats.ReleaseCount)
	assert.Equal(t, int64(120), stats.ReleasedBytes)
	assert.Equal(t, int64(40), stats.InUseBytes)
	assert.Equal(t, int64(150), stats.PeakBytes)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	var mc BasicMetricsCollector
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				mc.RecordReserve(8, nil)
				mc.RecordRelease(8)
			}
		}()
	}
	wg.Wait()

	stats := mc.GetStats()
	assert.Equal(t, int64(8000), stats.ReserveCount)
	assert.Equal(t, int64(0), stats.InUseBytes)
	assert.LessOrEqual(t, stats.PeakBytes, int64(64))
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordReserve(1, nil)
		mc.RecordRelease(1)
	})
}
