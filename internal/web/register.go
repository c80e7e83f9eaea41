package web

import (
	"errors"
	"net/http"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/i18n"
	"github.com/flyai/flyai/pkg/logger"
)

type registerData struct {
	pageData
	Phone string
	OTP   string
	Error string
}

func (h *Handler) showRegister(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r) != nil {
		http.Redirect(w, r, "/book", http.StatusFound)
		return
	}
	h.render(w, r, "register", registerData{
		pageData: pageData{Lang: h.currentLang(r)},
	})
}

// handleRegister drives both registration steps. A submission without a code
// issues one and re-renders the form asking for it (Anonymous → Registering);
// a submission with a code attempts verification (Registering →
// Authenticated, or back to Registering on mismatch).
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	phone := r.PostFormValue("phone")
	code := r.PostFormValue("otp")
	lang := domain.ParseLanguage(r.PostFormValue("lang"))

	if code == "" {
		issued, err := h.reg.Begin(r.Context(), phone, lang)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyRegistered) {
				http.Redirect(w, r, "/book", http.StatusFound)
				return
			}
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, "register", registerData{
			pageData: pageData{Lang: lang},
			Phone:    phone,
			OTP:      issued,
		})
		return
	}

	user, err := h.reg.Complete(r.Context(), phone, code)
	if err != nil {
		if errors.Is(err, domain.ErrCodeMismatch) {
			// Same pending code again; it is not regenerated on failure.
			data := registerData{
				pageData: pageData{Lang: lang},
				Phone:    phone,
				Error:    i18n.Text(lang, i18n.WrongOTP),
			}
			if pending, ok := h.reg.Pending(); ok {
				data.OTP = pending.Code
			}
			h.render(w, r, "register", data)
			return
		}
		h.renderError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(user.Phone, user.Language)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.InfoContext(r.Context(), "User registered", "phone", user.Phone, "language", user.Language)

	setCookie(w, sessionCookie, token)
	setCookie(w, langCookie, string(user.Language))
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}

func (h *Handler) toggleLang(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/book", http.StatusFound)
		return
	}
	lang := domain.ParseLanguage(r.PostFormValue("lang"))
	setCookie(w, langCookie, string(lang))

	// Back to wherever the toggle was used; authentication state is
	// untouched.
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = "/book"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}
