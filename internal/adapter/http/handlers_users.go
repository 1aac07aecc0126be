package adapthttp

import (
	"errors"
	"net/http"

	"feedbackapp/internal/app"
)

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	// Not-found is decided before the guard runs.
	user, err := s.auth.GetUser(r.Context(), username)
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !app.CanViewProfile(identity(r), username) {
		redirectWithFlash(w, r, "/", "You're not authorized!", http.StatusFound)
		return
	}

	feedbacks, err := s.feedback.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, "profile.html", &pageData{
		User:      user,
		Feedbacks: feedbacks,
	})
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if _, err := s.auth.GetUser(r.Context(), username); err != nil {
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !app.CanDeleteUser(identity(r), username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusSeeOther)
		return
	}

	if err := s.auth.DeleteUser(r.Context(), username); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// The cascade already dropped the session rows; drop the cookie too.
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
