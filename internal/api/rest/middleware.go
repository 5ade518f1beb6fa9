package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/logger"
	"sportshare-backend/internal/security"
)

type contextKey string

const actorKey contextKey = "actor_id"

// AuthMiddleware extracts the bearer token, validates it and stores the
// authenticated user id on the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, domain.ErrUnauthenticated)
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.UserID == 0 {
				writeError(w, domain.ErrUnauthenticated)
				return
			}
			ctx := context.WithValue(r.Context(), actorKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorID returns the authenticated user id placed by AuthMiddleware.
func actorID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(actorKey).(int64)
	if !ok || id == 0 {
		return 0, domain.ErrUnauthenticated
	}
	return id, nil
}

// LoggingMiddleware logs one line per request with method, path, status
// and latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
