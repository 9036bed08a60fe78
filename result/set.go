package result

import "errors"

// ErrNoResult indicates a set holds no success value and no error to
// surface, which happens only when no handlers were resolved.
var ErrNoResult = errors.New("result: set contains no result")

// Set is an ordered collection of results, one per dispatched handler, in
// handler resolution order. Position i always corresponds to the i-th
// resolved handler regardless of completion order.
//
// All aggregate operations are pure scans; a Set is never mutated after the
// dispatch that produced it returns.
type Set[T any] []Result[T]

// HasValue reports whether any result in the set succeeded.
func (s Set[T]) HasValue() bool {
	for _, r := range s {
		if r.HasValue() {
			return true
		}
	}
	return false
}

// HasErr reports whether any result in the set failed.
func (s Set[T]) HasErr() bool {
	for _, r := range s {
		if r.HasErr() {
			return true
		}
	}
	return false
}

// FirstValue returns the first success value in order, if any.
func (s Set[T]) FirstValue() (T, bool) {
	for _, r := range s {
		if v, ok := r.Value(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstErr returns the first captured error in order, or nil. An earlier
// failure is surfaced even when a later handler succeeded.
func (s Set[T]) FirstErr() error {
	for _, r := range s {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the first success value in order. If no handler succeeded it
// returns the first captured error, or ErrNoResult for an empty set.
func (s Set[T]) Get() (T, error) {
	if v, ok := s.FirstValue(); ok {
		return v, nil
	}
	var zero T
	if err := s.FirstErr(); err != nil {
		return zero, err
	}
	return zero, ErrNoResult
}

// EachValue calls fn for every success value, in order.
func (s Set[T]) EachValue(fn func(T)) {
	for _, r := range s {
		if v, ok := r.Value(); ok {
			fn(v)
		}
	}
}

// EachErr calls fn for every captured error, in order.
func (s Set[T]) EachErr(fn func(error)) {
	for _, r := range s {
		if err := r.Err(); err != nil {
			fn(err)
		}
	}
}
