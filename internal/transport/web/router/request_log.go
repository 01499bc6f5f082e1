package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jbeshir/interview-insights/internal/domain"
)

const requestIDHeader = "X-Request-Id"

// requestLoggingMiddleware tags the request logger with a request id, reusing one supplied upstream.
func requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		logger := domain.LoggerFromContext(r.Context()).With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx := domain.ContextWithLogger(r.Context(), logger)
		logger.DebugContext(ctx, "handling request")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
