// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"feedbackapp/internal/app"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth       *app.AuthService
	feedback   *app.FeedbackService
	oidc       *OIDCConfig
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, feedback *app.FeedbackService, oidc *OIDCConfig, sessionTTL time.Duration) *Server {
	return &Server{
		auth:       auth,
		feedback:   feedback,
		oidc:       oidc,
		sessionTTL: sessionTTL,
		logger:     log.Logger,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /secret", s.handleSecret)

	mux.HandleFunc("GET /users/{username}", s.handleUserProfile)
	mux.HandleFunc("POST /users/{username}/delete", s.handleUserDelete)
	mux.HandleFunc("GET /users/{username}/feedback/add", s.handleFeedbackAddForm)
	mux.HandleFunc("POST /users/{username}/feedback/add", s.handleFeedbackAdd)

	mux.HandleFunc("GET /feedback/{id}/update", s.handleFeedbackUpdateForm)
	mux.HandleFunc("POST /feedback/{id}/update", s.handleFeedbackUpdate)
	mux.HandleFunc("POST /feedback/{id}/delete", s.handleFeedbackDelete)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	if s.oidc != nil && s.oidc.Enabled {
		mux.HandleFunc("GET /sso/login", s.handleSSOLogin)
		mux.HandleFunc("GET /sso/callback", s.handleSSOCallback)
	}

	return s.loggingMiddleware(s.sessionMiddleware(mux))
}
