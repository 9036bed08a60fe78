package relay

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/relay/result"
	"github.com/dshills/relay/token"
)

// Engine routes requests to registered handlers, threading each invocation
// through the middleware chain for its request type. The engine keeps no
// state across calls; everything a dispatch needs lives for the duration of
// that one call.
type Engine struct {
	resolver Resolver
	config   Config
	metrics  *Metrics
	logger   *slog.Logger
}

// New creates an engine dispatching to the given resolver's registrations.
func New(resolver Resolver, config Config) *Engine {
	e := &Engine{
		resolver: resolver,
		config:   config,
		logger:   config.Logger,
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.EnableMetrics {
		e.metrics = &Metrics{}
	}
	return e
}

// NewWithDefaults creates an engine with the default configuration.
func NewWithDefaults(resolver Resolver) *Engine {
	return New(resolver, DefaultConfig())
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Send dispatches req synchronously to every registered handler for its
// type, in registration order, and returns one result per handler in that
// same order. Handler and middleware failures, including recovered panics
// and cooperative cancellation, are captured in the result set, never
// propagated to the caller. Zero registered handlers yield an empty set.
//
// The response type appears first so it can be named while the request type
// is inferred:
//
//	set := relay.Send[Record](eng, tok, Lookup{Key: "a"})
func Send[R any, Q Request[R]](e *Engine, tok token.Token, req Q) result.Set[R] {
	handlers := resolveAll[Handler[Q, R]](e.resolver)
	mws := resolveAll[Middleware[Q, R]](e.resolver)

	id := uuid.NewString()
	e.logger.Debug("dispatching request",
		"dispatch_id", id,
		"request", fmt.Sprintf("%T", req),
		"handlers", len(handlers),
		"middleware", len(mws),
	)

	set := make(result.Set[R], 0, len(handlers))
	for _, h := range handlers {
		set = append(set, invoke(e, id, chain(h, mws), tok, req))
	}
	return set
}

// SendOne dispatches req to the first registered handler for its type and
// returns that handler's response directly. It is the single-handler form
// of Send: when no handler is registered it fails with ErrNoHandler, since
// that is a configuration error rather than a per-call outcome. The
// middleware chain applies exactly as in Send.
func SendOne[R any, Q Request[R]](e *Engine, tok token.Token, req Q) (R, error) {
	handlers := resolveAll[Handler[Q, R]](e.resolver)
	if len(handlers) == 0 {
		var zero R
		return zero, fmt.Errorf("%w: %T", ErrNoHandler, req)
	}
	mws := resolveAll[Middleware[Q, R]](e.resolver)

	id := uuid.NewString()
	e.logger.Debug("dispatching request",
		"dispatch_id", id,
		"request", fmt.Sprintf("%T", req),
		"handlers", 1,
		"middleware", len(mws),
	)

	return invoke(e, id, chain(handlers[0], mws), tok, req).Get()
}

// SendAsync dispatches req concurrently to every registered handler for its
// type, one goroutine per handler, and returns a handle to the in-flight
// fan-out. Every task shares tok, so one Cancel stops cooperative checks in
// all of them. Each task builds its own middleware chain and captures its
// outcome exactly like the synchronous path; a panicking task never
// escapes its goroutine.
//
// The returned Pending resolves results into registration order no matter
// which task finishes first.
func SendAsync[R any, Q Request[R]](e *Engine, tok token.Token, req Q) *Pending[R] {
	handlers := resolveAll[Handler[Q, R]](e.resolver)
	mws := resolveAll[Middleware[Q, R]](e.resolver)

	p := &Pending[R]{
		id:      uuid.NewString(),
		tok:     tok,
		results: make([]result.Result[R], len(handlers)),
		done:    make(chan struct{}),
	}

	e.logger.Debug("dispatching request",
		"dispatch_id", p.id,
		"request", fmt.Sprintf("%T", req),
		"handlers", len(handlers),
		"middleware", len(mws),
		"async", true,
	)

	var wg sync.WaitGroup
	wg.Add(len(handlers))
	for i, h := range handlers {
		go func(i int, h Handler[Q, R]) {
			defer wg.Done()
			p.results[i] = invoke(e, p.id, chain(h, mws), tok, req)
		}(i, h)
	}
	go func() {
		wg.Wait()
		close(p.done)
	}()

	return p
}

// invoke runs one built chain and captures its outcome. It is the per-
// handler dispatch boundary: errors and panics stop here, classified into
// the result rather than unwinding further.
func invoke[Q, R any](e *Engine, id string, h Handler[Q, R], tok token.Token, req Q) result.Result[R] {
	start := time.Now()

	var res result.Result[R]
	if e.config.RecoverFromPanic {
		res = invokeRecover(e, id, h, tok, req)
	} else {
		res = capture(h.Handle(tok, req))
	}

	e.metrics.record(time.Since(start), res.Err())
	return res
}

// invokeRecover converts a panic escaping the chain into a *PanicError
// result, keeping a misbehaving handler from taking down its siblings or
// the caller.
func invokeRecover[Q, R any](e *Engine, id string, h Handler[Q, R], tok token.Token, req Q) (res result.Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("recovered panic in handler",
				"dispatch_id", id,
				"request", fmt.Sprintf("%T", req),
				"panic", rec,
			)
			res = result.Err[R](&PanicError{Value: rec, Stack: debug.Stack()})
		}
	}()
	return capture(h.Handle(tok, req))
}

func capture[R any](v R, err error) result.Result[R] {
	if err != nil {
		return result.Err[R](err)
	}
	return result.Ok(v)
}
