// Package middleware holds the HTTP middleware of the course service.
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
