package relay

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/dshills/relay/token"
)

// Metrics collects dispatch statistics. All counters are atomic, so a
// snapshot taken while fan-out tasks are running may be slightly
// inconsistent across fields.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	cancelled   atomic.Uint64
	timedOut    atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// record classifies one chain invocation outcome. Every invocation counts
// toward exactly one of succeeded, cancelled, timedOut, or failed; panics
// additionally increment panicked.
func (m *Metrics) record(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.dispatched.Add(1)
	m.totalTimeNs.Add(d.Nanoseconds())

	switch {
	case err == nil:
		m.succeeded.Add(1)
	case errors.Is(err, token.ErrTimedOut):
		m.timedOut.Add(1)
	case errors.Is(err, token.ErrCancelled):
		m.cancelled.Add(1)
	default:
		m.failed.Add(1)
		var pe *PanicError
		if errors.As(err, &pe) {
			m.panicked.Add(1)
		}
	}
}

// Stats is a point-in-time snapshot of dispatch statistics.
type Stats struct {
	// Dispatched is the total number of chain invocations.
	Dispatched uint64

	// Succeeded is the number of invocations that returned a value.
	Succeeded uint64

	// Failed is the number of invocations that failed for a reason other
	// than cancellation, including recovered panics.
	Failed uint64

	// Cancelled is the number of invocations stopped by an explicit cancel.
	Cancelled uint64

	// TimedOut is the number of invocations stopped by a deadline.
	TimedOut uint64

	// Panicked is the number of invocations that panicked and were
	// recovered. Panicked invocations are also counted in Failed.
	Panicked uint64

	// TotalDuration is the cumulative time spent inside chains.
	TotalDuration time.Duration

	// AvgDuration is the average chain invocation time.
	AvgDuration time.Duration
}

// Stats returns a snapshot of the collected statistics.
func (m *Metrics) Stats() Stats {
	if m == nil {
		return Stats{}
	}

	dispatched := m.dispatched.Load()
	totalNs := m.totalTimeNs.Load()

	var avgNs int64
	if dispatched > 0 {
		avgNs = totalNs / int64(dispatched)
	}

	return Stats{
		Dispatched:    dispatched,
		Succeeded:     m.succeeded.Load(),
		Failed:        m.failed.Load(),
		Cancelled:     m.cancelled.Load(),
		TimedOut:      m.timedOut.Load(),
		Panicked:      m.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// Reset resets all statistics to zero.
func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	m.dispatched.Store(0)
	m.succeeded.Store(0)
	m.failed.Store(0)
	m.cancelled.Store(0)
	m.timedOut.Store(0)
	m.panicked.Store(0)
	m.totalTimeNs.Store(0)
}
