package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	remindersSent   uint64
	reminderErrors  uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordReminder(ok bool) {
	if ok {
		atomic.AddUint64(&c.remindersSent, 1)
		return
	}
	atomic.AddUint64(&c.reminderErrors, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":    atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":       avg,
		"remindersSentTotal":  atomic.LoadUint64(&c.remindersSent),
		"reminderErrorsTotal": atomic.LoadUint64(&c.reminderErrors),
	}
}
