package relay

// Resolver supplies the registered handler and middleware instances the
// engine dispatches to. It is the engine's single external collaborator;
// the registry package provides the default implementation, but anything
// that can enumerate its registrations in a stable order will do.
type Resolver interface {
	// Resolve returns every registered instance in registration order.
	// An empty slice is valid.
	Resolve() []any
}

// resolveAll filters the resolver's instances down to those implementing
// capability C, preserving registration order. The filter is a plain type
// assertion, so "handler for Q producing R" and "middleware for Q" resolve
// against the concrete generic instantiation with no runtime type registry.
func resolveAll[C any](r Resolver) []C {
	var out []C
	for _, v := range r.Resolve() {
		if c, ok := v.(C); ok {
			out = append(out, c)
		}
	}
	return out
}
