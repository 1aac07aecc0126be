package adapthttp

import (
	"errors"
	"net/http"
	"net/url"

	"feedbackapp/internal/app"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", nil)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register.html", &pageData{Form: map[string]string{}})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	reg := app.Registration{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
	}

	user, token, err := s.auth.Register(r.Context(), reg)
	var vErr *app.ValidationError
	switch {
	case errors.As(err, &vErr):
		s.render(w, r, http.StatusOK, "register.html", &pageData{
			Form:   formValues(r),
			Errors: map[string]string{vErr.Field: vErr.Message},
		})
	case errors.Is(err, app.ErrDuplicateUsername):
		s.render(w, r, http.StatusOK, "register.html", &pageData{
			Form:   formValues(r),
			Errors: map[string]string{"username": "is already taken"},
		})
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		setSessionCookie(w, token, s.sessionTTL)
		http.Redirect(w, r, "/users/"+url.PathEscape(user.Username), http.StatusSeeOther)
	}
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login.html", &pageData{Form: map[string]string{}})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	token, err := s.auth.Login(r.Context(), username, r.PostFormValue("password"))
	if errors.Is(err, app.ErrInvalidCredentials) {
		// One generic message regardless of which part was wrong.
		s.render(w, r, http.StatusOK, "login.html", &pageData{
			Form:      formValues(r),
			FormError: "Incorrect username/password",
		})
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token, s.sessionTTL)
	http.Redirect(w, r, "/users/"+url.PathEscape(username), http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		_ = s.auth.Logout(r.Context(), cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleSecret(w http.ResponseWriter, r *http.Request) {
	if identity(r) == "" {
		redirectWithFlash(w, r, "/", "You must be logged in to view!", http.StatusFound)
		return
	}
	s.render(w, r, http.StatusOK, "secret.html", nil)
}
