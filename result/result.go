package result

import (
	"errors"

	"github.com/dshills/relay/token"
)

// Result is the outcome of a single handler invocation: a success value or
// a captured, classified error. The two are mutually exclusive.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err returns a failed result carrying err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// HasValue reports whether the result carries a success value.
func (r Result[T]) HasValue() bool {
	return r.ok
}

// HasErr reports whether the result carries an error.
func (r Result[T]) HasErr() bool {
	return r.err != nil
}

// Value returns the success value and whether one is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the captured error, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the success value, or re-surfaces the captured error.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Cancelled reports whether the captured error is any kind of cancellation,
// including a timeout.
func (r Result[T]) Cancelled() bool {
	return errors.Is(r.err, token.ErrCancelled)
}

// TimedOut reports whether the captured error is specifically a deadline
// expiry.
func (r Result[T]) TimedOut() bool {
	return errors.Is(r.err, token.ErrTimedOut)
}
