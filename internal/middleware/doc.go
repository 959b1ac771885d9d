// Package middleware provides HTTP middleware for the Sanctuary API.
//
// Middleware wraps the router via Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//	    middleware.Recovery,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Metrics,
//	    middleware.CORS([]string{"*"}),
//	    middleware.Compress,
//	)
//
// # Available Middleware
//
//   - Recovery: catches panics and answers 500 as problem JSON
//   - RequestID: assigns or propagates an X-Request-ID header
//   - Logger: structured request logging via slog
//   - Metrics: Prometheus request counters, latency, in-flight gauge
//   - CORS: cross-origin headers; the API is open to any frontend
//   - Compress: gzip response bodies when the client accepts it
//
// Metrics must sit inside RequestID in the chain: it reads the matched mux
// pattern off the request after routing, and RequestID swaps the request for
// a context-carrying clone.
//
// # Context Values
//
// GetRequestID(ctx) returns the request identifier set by RequestID, or ""
// when the middleware did not run.
package middleware
