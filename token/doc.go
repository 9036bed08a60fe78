// Package token provides shared, copyable cancellation tokens with optional
// deadlines.
//
// A Token is a small value wrapping shared state: copies made by assignment
// or by passing it to a function all observe and control the same flag.
// Cancellation is monotonic and strictly cooperative: code running under a
// token must call Err (or Cancelled) at safe points to observe it.
//
// Two kinds of cancellation are distinguishable downstream:
//
//   - ErrCancelled: someone called Cancel on any copy of the token.
//   - ErrTimedOut: the deadline set by WithTimeout has passed.
//
// ErrTimedOut wraps ErrCancelled, so code that only cares whether work
// should stop can test errors.Is(err, token.ErrCancelled) and cover both.
package token
