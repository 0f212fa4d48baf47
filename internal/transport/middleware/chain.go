package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes a middleware stack into one Middleware. The first entry
// becomes the outermost layer, so Chain(RequestID, Auth)(h) tags the
// request before the token is resolved.
func Chain(stack ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(stack) - 1; i >= 0; i-- {
			final = stack[i](final)
		}
		return final
	}
}
