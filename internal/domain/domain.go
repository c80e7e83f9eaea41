package domain

// Language is the user's preferred display language.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

// ParseLanguage maps a raw tag to a known language, falling back to English.
func ParseLanguage(s string) Language {
	if Language(s) == LangHindi {
		return LangHindi
	}
	return LangEnglish
}

// DateTimeLayout is the canonical booking timestamp format (24-hour clock).
const DateTimeLayout = "2006-01-02 15:04"

// StatusScheduled is the only booking status the system currently assigns.
const StatusScheduled = "Scheduled"

// UserProfile is the single registered user of the document. It is created
// only when an OTP verification succeeds.
type UserProfile struct {
	Phone    string   `json:"phone"`
	Language Language `json:"language"`
}

// PendingVerification is the process-lifetime registration slot. It is never
// persisted; a newer registration attempt overwrites it and there is no
// expiry or attempt limit.
type PendingVerification struct {
	Phone    string
	Code     string
	Language Language
}

// Booking is one scheduled spray appointment. IDs start at 1 and are assigned
// as count+1; bookings are never mutated or deleted after creation.
//
// District through SprayType come from the richer web form and stay empty when
// the CLI creates the booking.
type Booking struct {
	ID        int    `json:"id"`
	Crop      string `json:"crop"`
	FieldSize string `json:"field_size"`
	Region    string `json:"region"`

	District      string `json:"district,omitempty"`
	Village       string `json:"village,omitempty"`
	NettingStatus string `json:"netting_status,omitempty"`
	TerrainType   string `json:"terrain_type,omitempty"`
	SprayType     string `json:"spray_type,omitempty"`

	Datetime string `json:"datetime"`
	Status   string `json:"status"`
}

// BookingRequest carries the submitted form fields before validation.
type BookingRequest struct {
	Crop      string
	FieldSize string
	Region    string

	District      string
	Village       string
	NettingStatus string
	TerrainType   string
	SprayType     string

	Datetime string
}

// Document is the whole persisted state: at most one user plus the booking
// history in insertion order.
type Document struct {
	User     *UserProfile `json:"user"`
	Bookings []Booking    `json:"bookings"`
}

// NewDocument returns the empty default document.
func NewDocument() *Document {
	return &Document{Bookings: []Booking{}}
}
