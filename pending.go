package relay

import (
	"time"

	"github.com/dshills/relay/result"
	"github.com/dshills/relay/token"
)

// Pending is a handle to an in-flight fan-out dispatch. It resolves once
// every task has completed; results keep the handler registration order
// regardless of completion order.
type Pending[R any] struct {
	id      string
	tok     token.Token
	results []result.Result[R]
	done    chan struct{}
}

// ID returns the dispatch correlation id, matching the id in the engine's
// logs for this call.
func (p *Pending[R]) ID() string {
	return p.id
}

// Done returns a channel closed when every task has completed.
func (p *Pending[R]) Done() <-chan struct{} {
	return p.done
}

// Wait parks until every task has a resolved outcome and returns true. If
// the shared token is already cancelled it returns false promptly, and if
// the token is cancelled or its deadline passes while parked it returns
// false then. Wait never reports an error itself; it is a poll/park
// primitive, and the per-task outcomes remain available via Get.
func (p *Pending[R]) Wait() bool {
	select {
	case <-p.done:
		return true
	default:
	}
	if p.tok.Cancelled() {
		return false
	}

	if dl, ok := p.tok.Deadline(); ok {
		timer := time.NewTimer(time.Until(dl))
		defer timer.Stop()
		select {
		case <-p.done:
			return true
		case <-p.tok.Done():
			return false
		case <-timer.C:
			return false
		}
	}

	select {
	case <-p.done:
		return true
	case <-p.tok.Done():
		return false
	}
}

// Get blocks until every task has completed and returns the full result
// set in handler registration order. Cancelling the token does not release
// Get early: cancellation is cooperative, so Get returns once every task
// has observed it (or finished on its own).
func (p *Pending[R]) Get() result.Set[R] {
	<-p.done
	out := make(result.Set[R], len(p.results))
	copy(out, p.results)
	return out
}
