package web

import (
	"errors"
	"net/http"

	"github.com/flyai/flyai/internal/domain"
)

type historyData struct {
	pageData
	Bookings []domain.Booking
}

func (h *Handler) showHistory(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r) == nil {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotRegistered) {
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, "history", historyData{
		pageData: pageData{Lang: h.currentLang(r)},
		Bookings: bookings,
	})
}

func (h *Handler) showHelp(w http.ResponseWriter, r *http.Request) {
	// Help is the one view open to anonymous visitors.
	h.render(w, r, "help", pageData{Lang: h.currentLang(r)})
}
