package middleware

import (
	"io"
	"net/http"
)

// chat messages are small, anything beyond this is not worth draining
const maxDrainBytes = 1 << 20

// DrainAndCloseRequest drains and closes the request body after the
// handler ran, so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
				_ = r.Body.Close()
			}
		})
	}
}
