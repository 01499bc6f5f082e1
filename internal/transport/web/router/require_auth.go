package router

import (
	"net/http"

	"github.com/jbeshir/interview-insights/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.CallerFromContext(r.Context()).IsAuthenticated() {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			writeAuthError(w, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requireModeratorMiddleware(next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := domain.CallerFromContext(r.Context())
		if !caller.Moderator {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "non-moderator attempted moderation endpoint")
			writeAuthError(w, http.StatusForbidden, domain.ErrNotModerator.Error())
			return
		}

		next.ServeHTTP(w, r)
	}))
}
