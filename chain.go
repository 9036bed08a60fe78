package relay

import "github.com/dshills/relay/token"

// chain links middleware around a terminal handler. The middleware slice is
// walked last to first so that the first-registered middleware ends up
// outermost and executes first. Each link is an immutable closure; the
// chain is built once per (handler, dispatch) and never reused, since
// middleware instances may be stateful.
//
// With no middleware the handler is returned as-is and dispatch invokes it
// directly.
func chain[Q, R any](h Handler[Q, R], mws []Middleware[Q, R]) Handler[Q, R] {
	next := h
	for i := len(mws) - 1; i >= 0; i-- {
		mw, inner := mws[i], next
		next = HandlerFunc[Q, R](func(tok token.Token, req Q) (R, error) {
			return mw.Handle(tok, req, inner)
		})
	}
	return next
}
