package adapthttp

import (
	"context"
	"net/http"
	"time"

	"feedbackapp/internal/domain"

	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// sessionMiddleware resolves the session cookie to a user and stores it on
// the request context. Requests without a valid session pass through as
// anonymous; the guard decides per handler what anonymous may do.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.auth.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			// Stale cookie, drop it and continue anonymous.
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the authenticated user on the request, if any.
func currentUser(r *http.Request) *domain.User {
	u, _ := r.Context().Value(userContextKey).(*domain.User)
	return u
}

// identity returns the authenticated username, or "" for anonymous.
func identity(r *http.Request) string {
	if u := currentUser(r); u != nil {
		return u.Username
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware emits one structured log line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
