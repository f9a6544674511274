package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps in-process request counters. Cheap enough to sit on
// the hot path; exposed read-only at /metrics.
type Collector struct {
	requests        uint64
	serverErrors    uint64
	rateLimited     uint64
	totalDurationMs uint64
	settlementRuns  uint64
	shiftCloses     uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	atomic.AddUint64(&c.requests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.serverErrors, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordSettlementRun() {
	atomic.AddUint64(&c.settlementRuns, 1)
}

func (c *Collector) RecordShiftClose() {
	atomic.AddUint64(&c.shiftCloses, 1)
}

func (c *Collector) Snapshot() map[string]any {
	requests := atomic.LoadUint64(&c.requests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if requests > 0 {
		avg = float64(totalMs) / float64(requests)
	}
	return map[string]any{
		"requestsTotal":    requests,
		"serverErrors":     atomic.LoadUint64(&c.serverErrors),
		"rateLimitedTotal": atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":    avg,
		"settlementRuns":   atomic.LoadUint64(&c.settlementRuns),
		"shiftCloses":      atomic.LoadUint64(&c.shiftCloses),
	}
}
