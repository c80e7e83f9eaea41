// Package web is the HTTP presentation layer: HTML forms over the
// registration and booking workflows, with cookie sessions and a bilingual
// language toggle.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flyai/flyai/internal/booking"
	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/i18n"
	"github.com/flyai/flyai/internal/registration"
	"github.com/flyai/flyai/internal/session"
	"github.com/flyai/flyai/pkg/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/*.js
var staticFS embed.FS

const (
	sessionCookie = "user"
	langCookie    = "lang"
)

var pages = map[string]*template.Template{
	"register": mustPage("register"),
	"book":     mustPage("book"),
	"history":  mustPage("history"),
	"help":     mustPage("help"),
}

func mustPage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS,
		"templates/base.gohtml", "templates/"+name+".gohtml"))
}

type Handler struct {
	reg      *registration.Service
	bookings *booking.Service
	sessions session.Manager
}

func New(reg *registration.Service, bookings *booking.Service, sessions session.Manager) *Handler {
	return &Handler{
		reg:      reg,
		bookings: bookings,
		sessions: sessions,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/register", h.showRegister)
	r.Post("/register", h.handleRegister)
	r.Get("/book", h.showBook)
	r.Post("/book", h.handleBook)
	r.Get("/history", h.showHistory)
	r.Get("/help", h.showHelp)
	r.Post("/toggle-lang", h.toggleLang)

	staticRoot, _ := fs.Sub(staticFS, "static")
	static := http.FileServer(http.FS(staticRoot))
	r.Handle("/address_dropdown.js", static)
	r.Handle("/date_dropdown.js", static)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/register", http.StatusFound)
	})

	return r
}

// currentSession resolves the session cookie, if any. An absent or invalid
// cookie means the visitor is anonymous.
func (h *Handler) currentSession(r *http.Request) *session.Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	sess, err := h.sessions.Resolve(c.Value)
	if err != nil {
		logger.DebugContext(r.Context(), "Rejected session cookie", "error", err)
		return nil
	}
	return sess
}

// currentLang reads the language preference cookie, falling back to English.
func (h *Handler) currentLang(r *http.Request) domain.Language {
	if c, err := r.Cookie(langCookie); err == nil {
		return domain.ParseLanguage(c.Value)
	}
	return domain.LangEnglish
}

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: value,
		Path:  "/",
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages[page].Execute(w, data); err != nil {
		logger.ErrorContext(r.Context(), "Failed to render page", "page", page, "error", err)
	}
}

// renderError surfaces a store failure: fatal for this request, never
// swallowed.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "Request failed", "error", err)
	lang := h.currentLang(r)
	http.Error(w, i18n.Text(lang, i18n.InternalProblem), http.StatusInternalServerError)
}

// pageData is the state every template needs: the language plus lookup
// helpers callable from the templates.
type pageData struct {
	Lang domain.Language
}

func (d pageData) T(key string) string {
	return i18n.Text(d.Lang, i18n.Key(key))
}

func (d pageData) IsHindi() bool {
	return d.Lang == domain.LangHindi
}
