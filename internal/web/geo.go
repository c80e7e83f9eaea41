package web

import (
	"fmt"
	"time"

	"github.com/flyai/flyai/internal/domain"
)

// Form option sets for the booking page, localized by hand like the rest of
// the display strings. The village map feeds the cascading
// region → district → village dropdowns on the client.

func cropOptions(lang domain.Language) []string {
	if lang == domain.LangHindi {
		return []string{"सेब", "टमाटर", "फूलगोभी"}
	}
	return []string{"Apple", "Tomato", "Cauliflower"}
}

func unitOptions(lang domain.Language) []string {
	if lang == domain.LangHindi {
		return []string{"बीघा", "कनाल", "एकड़"}
	}
	return []string{"Bigha", "Kanal", "Acre"}
}

func regionOptions(lang domain.Language) []string {
	if lang == domain.LangHindi {
		return []string{"हिमाचल", "उत्तर प्रदेश", "हरियाणा", "उत्तराखंड"}
	}
	return []string{"Himachal", "Uttar Pradesh", "Haryana", "Uttarakhand"}
}

var villageDataEN = map[string]map[string][]string{
	"Himachal": {
		"Shimla": {"Mashobra", "Rampur", "Chopal"},
		"Kangra": {"Dharamshala", "Palampur", "Nagrota"},
		"Mandi":  {"Sundernagar", "Jogindernagar", "Karsog"},
	},
	"Uttar Pradesh": {
		"Lucknow":  {"Gosainganj", "Malihabad", "Bakshi Ka Talab"},
		"Kanpur":   {"Bilhaur", "Ghatampur", "Sarsaul"},
		"Varanasi": {"Cholapur", "Araziline", "Pindra"},
	},
	"Haryana": {
		"Gurgaon":   {"Sikanderpur", "Badshahpur", "Manesar"},
		"Faridabad": {"Ballabgarh", "Tigaon", "Pali"},
		"Panipat":   {"Samalkha", "Israna", "Bapoli"},
	},
	"Uttarakhand": {
		"Dehradun": {"Raipur", "Vikasnagar", "Doiwala"},
		"Haridwar": {"Roorkee", "Laksar", "Bhagwanpur"},
		"Nainital": {"Haldwani", "Ramgarh", "Betalghat"},
	},
}

var villageDataHI = map[string]map[string][]string{
	"हिमाचल": {
		"शिमला":   {"मशोबरा", "रामपुर", "चौपाल"},
		"कांगड़ा": {"धर्मशाला", "पालमपुर", "नगरोटा"},
		"मंडी":    {"सुंदरनगर", "जोगिंदरनगर", "करसोग"},
	},
	"उत्तर प्रदेश": {
		"लखनऊ":    {"गोसाईगंज", "मलिहाबाद", "बक्शी का तालाब"},
		"कानपुर":  {"बिल्हौर", "घाटमपुर", "सरसौल"},
		"वाराणसी": {"चोलापुर", "अराजीलाइन", "पिंडरा"},
	},
	"हरियाणा": {
		"गुड़गांव": {"सिकंदरपुर", "बादशाहपुर", "मानेसर"},
		"फरीदाबाद": {"बल्लभगढ़", "टिगांव", "पाली"},
		"पानीपत":   {"समालखा", "इसराना", "बापोली"},
	},
	"उत्तराखंड": {
		"देहरादून": {"रायपुर", "विकासनगर", "डोईवाला"},
		"हरिद्वार": {"रुड़की", "लक्सर", "भगवानपुर"},
		"नैनीताल":  {"हल्द्वानी", "रामगढ़", "बेतालघाट"},
	},
}

func villageData(lang domain.Language) map[string]map[string][]string {
	if lang == domain.LangHindi {
		return villageDataHI
	}
	return villageDataEN
}

func fieldSizeOptions() []int {
	sizes := make([]int, 0, 15)
	for i := 1; i <= 15; i++ {
		sizes = append(sizes, i)
	}
	return sizes
}

func yearOptions(now time.Time) []int {
	maxYear := now.Year() + 4
	if maxYear < 2029 {
		maxYear = 2029
	}
	years := make([]int, 0, maxYear-now.Year()+1)
	for y := now.Year(); y <= maxYear; y++ {
		years = append(years, y)
	}
	return years
}

func monthOptions() []string {
	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, fmt.Sprintf("%02d", m))
	}
	return months
}

func dayOptions() []string {
	days := make([]string, 0, 31)
	for d := 1; d <= 31; d++ {
		days = append(days, fmt.Sprintf("%02d", d))
	}
	return days
}

// timeOptions covers the spray window, 08:00 through 18:00 on the hour.
func timeOptions() []string {
	times := make([]string, 0, 11)
	for h := 8; h <= 18; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h))
	}
	return times
}
