package containers

import (
	"context"

	"github.com/hupe1980/containers/mem"
)

// Instrument wraps b so that every reservation and release is logged and
// reported to a MetricsCollector. Log records carry component=budget.
// A nil b grants every reservation.
//
// The returned budget is safe for concurrent use when b is.
func Instrument(b mem.Budget, opts ...Option) mem.Budget {
	o := applyOptions(opts)
	return &instrumentedBudget{
		next:    b,
		logger:  o.logger.WithComponent("budget"),
		metrics: o.metricsCollector,
	}
}

type instrumentedBudget struct {
	next    mem.Budget
	logger  *Logger
	metrics MetricsCollector
}

func (ib *instrumentedBudget) AcquireMemory(bytes int64) error {
	var err error
	if ib.next != nil {
		err = ib.next.AcquireMemory(bytes)
	}
	ib.metrics.RecordReserve(bytes, err)
	ib.logger.LogReserve(context.Background(), bytes, err)
	return err
}

func (ib *instrumentedBudget) ReleaseMemory(bytes int64) {
	if ib.next != nil {
		ib.next.ReleaseMemory(bytes)
	}
	ib.metrics.RecordRelease(bytes)
	ib.logger.LogRelease(context.Background(), bytes)
}
