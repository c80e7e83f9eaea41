// Package i18n holds the bilingual (English/Hindi) display strings keyed by a
// typed message key. Unknown language tags fall back to English.
package i18n

import "github.com/flyai/flyai/internal/domain"

type Key string

const (
	RegisterTitle   Key = "register_title"
	EnterPhone      Key = "enter_phone"
	EnterOTP        Key = "enter_otp"
	LanguagePrompt  Key = "language_prompt"
	YourOTP         Key = "your_otp"
	WrongOTP        Key = "wrong_otp"
	RegisterSuccess Key = "register_success"

	NewBooking     Key = "new_booking"
	Crop           Key = "crop"
	FieldSize      Key = "field_size"
	Region         Key = "region"
	District       Key = "district"
	Village        Key = "village"
	NettingStatus  Key = "netting_status"
	TerrainType    Key = "terrain_type"
	SprayType      Key = "spray_type"
	SprayFungicide Key = "spray_fungicide"
	SprayInsect    Key = "spray_insecticide"
	SprayFoliar    Key = "spray_foliar"
	SprayCustom    Key = "spray_custom"
	DateTime       Key = "datetime"
	BadDate        Key = "bad_date"
	BookingDone    Key = "booking_done"

	History     Key = "history"
	NoBookings  Key = "none"
	MenuBooking Key = "menu_booking"
	MenuHistory Key = "menu_history"
	MenuHelp    Key = "menu_help"
	MenuExit    Key = "menu_exit"
	MenuChoose  Key = "menu_choose"
	MenuInvalid Key = "menu_invalid"

	HelpPhone       Key = "help_phone"
	HelpEmail       Key = "help_email"
	RegisterFirst   Key = "register_first"
	SubmitLabel     Key = "submit"
	InternalProblem Key = "internal_problem"
)

var english = map[Key]string{
	RegisterTitle:   "User Registration",
	EnterPhone:      "Enter mobile number",
	EnterOTP:        "Enter OTP",
	LanguagePrompt:  "Language",
	YourOTP:         "Your OTP",
	WrongOTP:        "Wrong OTP. Please try again.",
	RegisterSuccess: "Registration successful!",

	NewBooking:     "New Spray Booking",
	Crop:           "Crop type",
	FieldSize:      "Field size",
	Region:         "Region",
	District:       "District",
	Village:        "Village",
	NettingStatus:  "Netting Status",
	TerrainType:    "Terrain Type",
	SprayType:      "Type of Spray",
	SprayFungicide: "Fungicide",
	SprayInsect:    "Insecticide",
	SprayFoliar:    "Foliar Nutrition",
	SprayCustom:    "Custom Mix",
	DateTime:       "Date & Time",
	BadDate:        "Invalid date format.",
	BookingDone:    "Booking confirmed! Status: Scheduled",

	History:     "Booking History",
	NoBookings:  "No bookings yet.",
	MenuBooking: "New spray booking",
	MenuHistory: "Booking history",
	MenuHelp:    "Help",
	MenuExit:    "Exit",
	MenuChoose:  "Choose an option",
	MenuInvalid: "Invalid option.",

	HelpPhone:       "Phone: 1800-000-000",
	HelpEmail:       "Email: support@flyai.example.com",
	RegisterFirst:   "Please register first.",
	SubmitLabel:     "Submit",
	InternalProblem: "Something went wrong. Please try again.",
}

var hindi = map[Key]string{
	RegisterTitle:   "उपयोगकर्ता पंजीकरण",
	EnterPhone:      "मोबाइल नंबर दर्ज करें",
	EnterOTP:        "OTP दर्ज करें",
	LanguagePrompt:  "भाषा",
	YourOTP:         "आपका OTP",
	WrongOTP:        "गलत OTP. पुन: प्रयास करें।",
	RegisterSuccess: "पंजीकरण सफल!",

	NewBooking:     "नई स्प्रे बुकिंग",
	Crop:           "फ़सल का प्रकार",
	FieldSize:      "क्षेत्रफल",
	Region:         "क्षेत्र",
	District:       "जनपद",
	Village:        "गांव",
	NettingStatus:  "नेटिंग स्थिति",
	TerrainType:    "भू-आकृति प्रकार",
	SprayType:      "स्प्रे का प्रकार",
	SprayFungicide: "फफूंदनाशक",
	SprayInsect:    "कीटनाशक",
	SprayFoliar:    "पर्ण पोषण",
	SprayCustom:    "कस्टम मिश्रण",
	DateTime:       "तारीख/समय",
	BadDate:        "गलत तारीख प्रारूप।",
	BookingDone:    "बुकिंग कन्फर्म्ड! स्थिति: Scheduled",

	History:     "बुकिंग इतिहास",
	NoBookings:  "कोई बुकिंग नहीं।",
	MenuBooking: "नई स्प्रे बुकिंग",
	MenuHistory: "बुकिंग इतिहास",
	MenuHelp:    "सहायता",
	MenuExit:    "बाहर निकलें",
	MenuChoose:  "चयन करें",
	MenuInvalid: "अमान्य विकल्प।",

	HelpPhone:       "फोन: 1800-000-000",
	HelpEmail:       "ईमेल: support@flyai.example.com",
	RegisterFirst:   "कृपया पहले पंजीकरण करें।",
	SubmitLabel:     "जमा करें",
	InternalProblem: "कुछ गलत हो गया। कृपया पुन: प्रयास करें।",
}

// Text returns the display string for the key in the given language. Unknown
// languages fall back to English; a missing key returns the key itself so a
// gap is visible rather than silent.
func Text(lang domain.Language, key Key) string {
	table := english
	if lang == domain.LangHindi {
		table = hindi
	}
	if s, ok := table[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return string(key)
}
