package adapthttp

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const (
	sessionCookie = "session"
	flashCookie   = "flash"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// setFlash stores a one-shot advisory message; the next rendered page pops it.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

// redirectWithFlash is the uniform denial response: an advisory message and a
// redirect, never a hard error page.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, location, message string, status int) {
	setFlash(w, message)
	http.Redirect(w, r, location, status)
}

func formValues(r *http.Request) map[string]string {
	vals := make(map[string]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			vals[k] = v[0]
		}
	}
	return vals
}
