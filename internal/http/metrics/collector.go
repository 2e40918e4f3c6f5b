package metrics

import (
	"sync"
	"time"
)

// Collector keeps coarse in-process request counters for /metrics.
type Collector struct {
	mu        sync.Mutex
	started   time.Time
	requests  int64
	statuses  map[int]int64
	errors    map[string]int64
	totalTime time.Duration
}

func NewCollector() *Collector {
	return &Collector{
		started:  time.Now().UTC(),
		statuses: make(map[int]int64),
		errors:   make(map[string]int64),
	}
}

func (c *Collector) IncRequest(status int, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.statuses[status]++
	c.totalTime += elapsed
}

func (c *Collector) IncError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

type Snapshot struct {
	UptimeSeconds float64          `json:"uptime_seconds"`
	Requests      int64            `json:"requests"`
	Statuses      map[int]int64    `json:"statuses"`
	Errors        map[string]int64 `json:"errors"`
	AvgLatencyMS  float64          `json:"avg_latency_ms"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	statuses := make(map[int]int64, len(c.statuses))
	for k, v := range c.statuses {
		statuses[k] = v
	}
	errs := make(map[string]int64, len(c.errors))
	for k, v := range c.errors {
		errs[k] = v
	}
	avg := 0.0
	if c.requests > 0 {
		avg = float64(c.totalTime.Milliseconds()) / float64(c.requests)
	}
	return Snapshot{
		UptimeSeconds: time.Since(c.started).Seconds(),
		Requests:      c.requests,
		Statuses:      statuses,
		Errors:        errs,
		AvgLatencyMS:  avg,
	}
}
