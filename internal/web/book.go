package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/i18n"
	"github.com/flyai/flyai/pkg/logger"
)

type sprayOption struct {
	Value string
	Label string
}

type bookData struct {
	pageData
	Error string

	Crops   []string
	Units   []string
	Regions []string
	Sizes   []int
	Years   []int
	Months  []string
	Days    []string
	Times   []string
	Sprays  []sprayOption

	// VillageJSON is the region → district → village map handed to the
	// cascading-dropdown script.
	VillageJSON template.JS
}

func (h *Handler) bookData(lang domain.Language, errMsg string) bookData {
	raw, _ := json.Marshal(villageData(lang))

	return bookData{
		pageData: pageData{Lang: lang},
		Error:    errMsg,

		Crops:   cropOptions(lang),
		Units:   unitOptions(lang),
		Regions: regionOptions(lang),
		Sizes:   fieldSizeOptions(),
		Years:   yearOptions(time.Now()),
		Months:  monthOptions(),
		Days:    dayOptions(),
		Times:   timeOptions(),
		Sprays: []sprayOption{
			{"fungicide", i18n.Text(lang, i18n.SprayFungicide)},
			{"insecticide", i18n.Text(lang, i18n.SprayInsect)},
			{"foliar", i18n.Text(lang, i18n.SprayFoliar)},
			{"custom", i18n.Text(lang, i18n.SprayCustom)},
		},

		VillageJSON: template.JS(raw),
	}
}

func (h *Handler) showBook(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r) == nil {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}
	lang := h.currentLang(r)
	h.render(w, r, "book", h.bookData(lang, ""))
}

func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r) == nil {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/book", http.StatusFound)
		return
	}
	lang := h.currentLang(r)

	req := domain.BookingRequest{
		Crop:      r.PostFormValue("crop"),
		FieldSize: r.PostFormValue("field_size"),
		Region:    r.PostFormValue("region"),

		District:      r.PostFormValue("district"),
		Village:       r.PostFormValue("village"),
		NettingStatus: r.PostFormValue("netting_status"),
		TerrainType:   r.PostFormValue("terrain_type"),
		SprayType:     r.PostFormValue("spray_type"),

		Datetime: formDatetime(r),
	}

	b, err := h.bookings.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadDateFormat):
			h.render(w, r, "book", h.bookData(lang, i18n.Text(lang, i18n.BadDate)))
		case errors.Is(err, domain.ErrNotRegistered):
			http.Redirect(w, r, "/register", http.StatusFound)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	logger.InfoContext(r.Context(), "Booking created", "booking_id", b.ID, "scheduled_for", b.Datetime)

	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

// formDatetime assembles the canonical datetime string from the split
// year/month/day/time selects, or takes a direct datetime field when the
// selects are absent.
func formDatetime(r *http.Request) string {
	year := r.PostFormValue("year")
	if year == "" {
		return r.PostFormValue("datetime")
	}
	return fmt.Sprintf("%s-%s-%s %s",
		year, r.PostFormValue("month"), r.PostFormValue("day"), r.PostFormValue("time"))
}
