package relay

import "github.com/dshills/relay/token"

// Unit is the response type for requests that produce no meaningful value.
type Unit struct{}

// Of binds a request type to its response type R. Embed it to declare the
// binding:
//
//	type Resize struct {
//	    relay.Of[relay.Unit]
//	    Cols, Rows int
//	}
//
//	type Lookup struct {
//	    relay.Of[Record]
//	    Key string
//	}
type Of[R any] struct{}

func (Of[R]) respond(R) {}

// Request is satisfied by any type that embeds Of[R]. The binding is
// checked at compile time: Send[R] only accepts requests declared to
// produce R, so a request can never reach a handler for the wrong type.
type Request[R any] interface {
	respond(R)
}

// Handler computes the response for one request type. Implementations are
// expected to check tok at safe points and return tok.Err() when it is
// non-nil; the engine never preempts a running handler.
//
// Handlers must treat the request as read-shared: during a fan-out the same
// request value is visible to every concurrently running handler.
type Handler[Q, R any] interface {
	Handle(tok token.Token, req Q) (R, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[Q, R any] func(token.Token, Q) (R, error)

// Handle calls f.
func (f HandlerFunc[Q, R]) Handle(tok token.Token, req Q) (R, error) {
	return f(tok, req)
}

// Middleware decorates handler invocation for one request type. It must
// call next to continue the chain; not calling next short-circuits the
// dispatch with the middleware's own return values.
type Middleware[Q, R any] interface {
	Handle(tok token.Token, req Q, next Handler[Q, R]) (R, error)
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc[Q, R any] func(token.Token, Q, Handler[Q, R]) (R, error)

// Handle calls f.
func (f MiddlewareFunc[Q, R]) Handle(tok token.Token, req Q, next Handler[Q, R]) (R, error) {
	return f(tok, req, next)
}
