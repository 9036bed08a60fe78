package relay

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrNoHandler indicates no handler is registered for a request type.
	// It is returned only by SendOne; the broadcast paths report an empty
	// resolution as an empty result set.
	ErrNoHandler = errors.New("relay: no handler for request")
)

// PanicError wraps a panic recovered from a handler or middleware during
// dispatch. It carries the panic value and the stack at the point of panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("relay: panic in handler: %v", e.Value)
}
