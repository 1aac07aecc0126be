package adapthttp

import (
	"embed"
	"html/template"
	"net/http"

	"feedbackapp/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData is the view model shared by all templates.
type pageData struct {
	Flash     string
	Identity  string
	User      *domain.User
	Feedback  *domain.Feedback
	Feedbacks []domain.Feedback
	Form      map[string]string
	Errors    map[string]string
	FormError string
	Action    string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data *pageData) {
	if data == nil {
		data = &pageData{}
	}
	data.Identity = identity(r)
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
