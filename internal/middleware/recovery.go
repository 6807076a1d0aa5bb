package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/ecochat/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery converts handler panics into a 500 instead of killing
// the connection, and counts them.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					http.Error(respWriter, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
