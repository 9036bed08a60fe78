package token

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// now is overridden in tests to provide deterministic deadline checks.
var now = time.Now

// Cancellation errors reported by Token.Err.
var (
	// ErrCancelled indicates the token was explicitly cancelled.
	ErrCancelled = errors.New("token: cancelled")

	// ErrTimedOut indicates the token's deadline has passed. It wraps
	// ErrCancelled, so errors.Is(err, ErrCancelled) holds for both kinds
	// while errors.Is(err, ErrTimedOut) identifies a timeout specifically.
	ErrTimedOut = fmt.Errorf("%w: deadline exceeded", ErrCancelled)
)

// Token is a shared cooperative cancellation signal with an optional
// deadline. Tokens are plain values; every copy shares the same underlying
// state, so cancelling any copy cancels all of them.
//
// Cancellation is cooperative: running code observes it by calling Err or
// Cancelled at safe points. Nothing is ever preempted, and a deadline has
// no effect on code that never checks the token.
//
// The zero Token is valid and is never cancelled.
type Token struct {
	s *state
}

type state struct {
	once     sync.Once
	done     chan struct{}
	deadline time.Time // zero means no deadline
}

// New returns a fresh token with no deadline.
func New() Token {
	return Token{s: &state{done: make(chan struct{})}}
}

// WithTimeout returns a token whose deadline is d from now. A non-positive
// d produces a token that is already expired.
func WithTimeout(d time.Duration) Token {
	t := New()
	t.s.deadline = now().Add(d)
	return t
}

// Cancel sets the shared cancellation flag. It is idempotent and safe to
// call from any goroutine; once cancelled a token never reverts.
func (t Token) Cancel() {
	if t.s == nil {
		return
	}
	t.s.once.Do(func() {
		close(t.s.done)
	})
}

// Cancelled reports whether the token has been cancelled, either explicitly
// or by an elapsed deadline.
func (t Token) Cancelled() bool {
	return t.Err() != nil
}

// Err returns nil while the token is live, ErrCancelled after an explicit
// Cancel, and ErrTimedOut once the deadline has passed. It is the single
// cancellation check-point handlers and middleware are expected to call.
func (t Token) Err() error {
	if t.s == nil {
		return nil
	}
	select {
	case <-t.s.done:
		return ErrCancelled
	default:
	}
	if !t.s.deadline.IsZero() && !now().Before(t.s.deadline) {
		return ErrTimedOut
	}
	return nil
}

// Done returns a channel closed by an explicit Cancel. Deadline expiry does
// not close it; deadlines are observed by checking Err, not by a timer.
// For the zero Token, Done returns nil (a channel that never fires).
func (t Token) Done() <-chan struct{} {
	if t.s == nil {
		return nil
	}
	return t.s.done
}

// Deadline returns the token's deadline and whether one is set.
func (t Token) Deadline() (time.Time, bool) {
	if t.s == nil || t.s.deadline.IsZero() {
		return time.Time{}, false
	}
	return t.s.deadline, true
}
