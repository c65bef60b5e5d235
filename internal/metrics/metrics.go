// Package metrics provides pass-through observability hooks. Nothing in the
// core pipeline depends on a particular sink being present.
package metrics

import (
	"time"

	"go.uber.org/atomic"
)

// Recorder receives cache and timing events from the forecast pipeline.
type Recorder interface {
	CacheHit()
	CacheMiss()
	ProviderCall(d time.Duration)
	RequestCompleted(d time.Duration)
}

// Noop discards all events.
type Noop struct{}

func (Noop) CacheHit()                      {}
func (Noop) CacheMiss()                     {}
func (Noop) ProviderCall(time.Duration)     {}
func (Noop) RequestCompleted(time.Duration) {}

// Counters is a lock-free in-memory Recorder.
type Counters struct {
	hits          atomic.Int64
	misses        atomic.Int64
	providerCalls atomic.Int64
	providerNanos atomic.Int64
	requests      atomic.Int64
	requestNanos  atomic.Int64
}

// NewCounters creates an empty Counters.
func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) CacheHit()  { c.hits.Inc() }
func (c *Counters) CacheMiss() { c.misses.Inc() }

func (c *Counters) ProviderCall(d time.Duration) {
	c.providerCalls.Inc()
	c.providerNanos.Add(int64(d))
}

func (c *Counters) RequestCompleted(d time.Duration) {
	c.requests.Inc()
	c.requestNanos.Add(int64(d))
}

// Stats is a point-in-time snapshot of the counters.
type Stats struct {
	CacheHits     int64   `json:"cacheHits"`
	CacheMisses   int64   `json:"cacheMisses"`
	ProviderCalls int64   `json:"providerCalls"`
	Requests      int64   `json:"requests"`
	AvgProviderMs float64 `json:"avgProviderMs"`
	AvgRequestMs  float64 `json:"avgRequestMs"`
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Stats {
	s := Stats{
		CacheHits:     c.hits.Load(),
		CacheMisses:   c.misses.Load(),
		ProviderCalls: c.providerCalls.Load(),
		Requests:      c.requests.Load(),
	}
	if s.ProviderCalls > 0 {
		s.AvgProviderMs = float64(c.providerNanos.Load()) / float64(s.ProviderCalls) / 1e6
	}
	if s.Requests > 0 {
		s.AvgRequestMs = float64(c.requestNanos.Load()) / float64(s.Requests) / 1e6
	}
	return s
}
