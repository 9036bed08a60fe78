// Package relay is an in-process request dispatch engine. Callers submit
// typed request values; the engine routes each to the registered handlers
// for that type, optionally threading the call through an ordered
// middleware chain, either synchronously or as a concurrent fan-out with
// cooperative cancellation.
//
// There is no network and no persistence: relay is the decoupling layer
// between code that wants an answer and code that knows how to compute it,
// inside one process.
//
// # Requests and Handlers
//
// A request declares its response type by embedding Of:
//
//	type Greet struct {
//	    relay.Of[string]
//	    Name string
//	}
//
//	type greeter struct{}
//
//	func (greeter) Handle(tok token.Token, req Greet) (string, error) {
//	    return "hello, " + req.Name, nil
//	}
//
// The binding is enforced at compile time: Send[string] accepts a Greet,
// and a handler is resolved only if its Handle signature matches both the
// request and the response type.
//
// # Dispatching
//
// Register handlers, build an engine, send:
//
//	reg := registry.New()
//	reg.Register(greeter{})
//	eng := relay.NewWithDefaults(reg)
//
//	tok := token.New()
//	set := relay.Send[string](eng, tok, Greet{Name: "dana"})
//	greeting, err := set.Get()
//
// Send broadcasts to every registered handler for the request type and
// returns one result per handler, in registration order. SendOne is the
// single-handler form: it returns the first handler's response directly
// and fails with ErrNoHandler when nothing is registered. SendAsync runs
// one goroutine per handler and returns a Pending handle:
//
//	p := relay.SendAsync[string](eng, tok, Greet{Name: "dana"})
//	if p.Wait() {
//	    set := p.Get()
//	    ...
//	}
//
// # Middleware
//
// Middleware registered for a request type wraps every handler invocation
// for that type, outermost first in registration order:
//
//	type timing struct{}
//
//	func (timing) Handle(tok token.Token, req Greet, next relay.Handler[Greet, string]) (string, error) {
//	    start := time.Now()
//	    defer func() { observe(time.Since(start)) }()
//	    return next.Handle(tok, req)
//	}
//
// Chains are built fresh for every dispatch, so stateful middleware is
// safe as long as the resolver hands out instances with matching lifetimes.
//
// # Cancellation
//
// Cancellation is cooperative. Handlers receive a token.Token and are
// expected to check it at safe points; the engine checks nothing on their
// behalf and never preempts. A token copy shares its flag with the
// original, so cancelling either stops both, and a deadline token reports
// token.ErrTimedOut distinguishably from an explicit cancel. Failures of
// either kind are captured per handler in the result set. A broadcast
// always yields the full set, and the caller decides how to treat partial
// failure.
package relay
