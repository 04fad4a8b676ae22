package methodtree

import "net/http"

// Middleware wraps an http.Handler.
//
// Middleware is applied in registration order, so Use(A, B) executes as:
// A -> B -> handler. Path values and Request.Pattern are already set when
// middleware runs.
type Middleware func(http.Handler) http.Handler

func chainMiddlewares(h http.Handler, mws []Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
