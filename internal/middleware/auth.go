package middleware

import (
	"errors"
	"net/http"

	"github.com/2beens/ecochat/internal/auth"
	"github.com/2beens/ecochat/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	sessionChecker auth.Checker
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(
	sessionChecker auth.Checker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessionChecker: sessionChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// a non-standard req. header is set, and thus - browser makes a preflight/OPTIONS request:
			//	https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#preflighted_requests
			authToken := r.Header.Get("X-ECO-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.sessionChecker.UserIDForToken(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrSessionNotFound) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "session-not-found")
					return
				}
				log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-session-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.SetUserID(ctx, userID)))
		})
	}
}
