// Package result provides discriminated per-handler outcomes and ordered
// collections of them.
//
// A Result holds either a success value or a captured error, never both.
// Errors are classified by kind with errors.Is against the token package's
// sentinels: Cancelled covers every cooperative stop (explicit cancel or
// timeout), TimedOut identifies deadline expiry specifically.
//
// A Set aggregates one Result per dispatched handler in handler resolution
// order, which is stable and independent of completion order. Aggregate
// accessors (FirstValue, FirstErr, Get) let a caller collapse a broadcast
// into a single definitive outcome without losing per-handler detail.
package result
