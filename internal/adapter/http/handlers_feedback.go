package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"feedbackapp/internal/app"
	"feedbackapp/internal/domain"
)

func (s *Server) handleFeedbackAddForm(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if !app.CanCreateFeedback(identity(r), username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusFound)
		return
	}
	if _, err := s.auth.GetUser(r.Context(), username); err != nil {
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, "feedback_form.html", &pageData{
		Form:   map[string]string{},
		Action: "/users/" + url.PathEscape(username) + "/feedback/add",
	})
}

func (s *Server) handleFeedbackAdd(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if !app.CanCreateFeedback(identity(r), username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusSeeOther)
		return
	}
	if _, err := s.auth.GetUser(r.Context(), username); err != nil {
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	in := app.FeedbackInput{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	_, err := s.feedback.Create(r.Context(), username, in)
	var vErr *app.ValidationError
	switch {
	case errors.As(err, &vErr):
		s.render(w, r, http.StatusOK, "feedback_form.html", &pageData{
			Form:   formValues(r),
			Errors: map[string]string{vErr.Field: vErr.Message},
			Action: "/users/" + url.PathEscape(username) + "/feedback/add",
		})
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/users/"+url.PathEscape(username), http.StatusSeeOther)
	}
}

func (s *Server) handleFeedbackUpdateForm(w http.ResponseWriter, r *http.Request) {
	f, ok := s.loadFeedback(w, r)
	if !ok {
		return
	}
	if !app.CanModifyFeedback(identity(r), f.Username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusFound)
		return
	}

	s.render(w, r, http.StatusOK, "feedback_form.html", &pageData{
		Feedback: f,
		Form:     map[string]string{"title": f.Title, "content": f.Content},
		Action:   fmt.Sprintf("/feedback/%d/update", f.ID),
	})
}

func (s *Server) handleFeedbackUpdate(w http.ResponseWriter, r *http.Request) {
	f, ok := s.loadFeedback(w, r)
	if !ok {
		return
	}
	if !app.CanModifyFeedback(identity(r), f.Username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	in := app.FeedbackInput{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	_, err := s.feedback.Update(r.Context(), f.ID, in)
	var vErr *app.ValidationError
	switch {
	case errors.As(err, &vErr):
		s.render(w, r, http.StatusOK, "feedback_form.html", &pageData{
			Feedback: f,
			Form:     formValues(r),
			Errors:   map[string]string{vErr.Field: vErr.Message},
			Action:   fmt.Sprintf("/feedback/%d/update", f.ID),
		})
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/users/"+url.PathEscape(f.Username), http.StatusSeeOther)
	}
}

func (s *Server) handleFeedbackDelete(w http.ResponseWriter, r *http.Request) {
	f, ok := s.loadFeedback(w, r)
	if !ok {
		return
	}
	if !app.CanDeleteFeedback(identity(r), f.Username) {
		redirectWithFlash(w, r, "/", "You are not authorized!", http.StatusSeeOther)
		return
	}

	if err := s.feedback.Delete(r.Context(), f.ID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users/"+url.PathEscape(f.Username), http.StatusSeeOther)
}

// loadFeedback resolves the {id} path value. On failure it has already
// written the response and returns ok=false.
func (s *Server) loadFeedback(w http.ResponseWriter, r *http.Request) (*domain.Feedback, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	f, err := s.feedback.Get(r.Context(), id)
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return f, true
}
