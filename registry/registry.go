// Package registry provides the default ordered store of handler and
// middleware instances for the relay engine.
//
// Registration order is significant: the engine dispatches to handlers, and
// links middleware, in exactly the order they were registered. Handlers and
// middleware share one sequence; the engine filters by capability at
// dispatch time.
package registry

import "sync"

// Registry is an ordered, concurrency-safe store of handler and middleware
// instances. The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	entries []any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register appends instances in the given order. Instances are typically
// handler or middleware implementations, but the registry itself places no
// constraint on them; unrecognized entries are simply never resolved.
func (r *Registry) Register(vs ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, vs...)
}

// Resolve returns a copy of every registered instance in registration
// order.
func (r *Registry) Resolve() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]any, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes all registered instances.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
