// Package stats tallies probe outcomes across a multi-path or scan run.
package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Collector counts probe outcomes using lock-free atomic counters.
type Collector struct {
	startTime time.Time
	probed    atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
	bytes     atomic.Int64
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

func (c *Collector) AddProbed(n int64)  { c.probed.Add(n) }
func (c *Collector) AddFailed(n int64)  { c.failed.Add(n) }
func (c *Collector) AddSkipped(n int64) { c.skipped.Add(n) }
func (c *Collector) AddBytes(n int64)   { c.bytes.Add(n) }

// Record tallies the outcome of one probe: a success adds size to the byte
// total, a failure only bumps the failure count.
func (c *Collector) Record(size int64, err error) {
	c.AddProbed(1)
	if err != nil {
		c.AddFailed(1)
		return
	}
	c.AddBytes(size)
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	Probed  int64
	Failed  int64
	Skipped int64
	Bytes   int64
	Elapsed time.Duration
}

// Succeeded returns the number of probes that did not fail.
func (s Snapshot) Succeeded() int64 { return s.Probed - s.Failed }

// Snapshot returns a point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Probed:  c.probed.Load(),
		Failed:  c.failed.Load(),
		Skipped: c.skipped.Load(),
		Bytes:   c.bytes.Load(),
		Elapsed: c.Elapsed(),
	}
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"probed=%d failed=%d skipped=%d bytes=%d",
		s.Probed, s.Failed, s.Skipped, s.Bytes,
	)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
