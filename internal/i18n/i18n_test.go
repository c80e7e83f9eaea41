package i18n_test

import (
	"testing"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/i18n"
)

func TestTextEnglish(t *testing.T) {
	got := i18n.Text(domain.LangEnglish, i18n.RegisterTitle)
	if got != "User Registration" {
		t.Errorf("got %q, want %q", got, "User Registration")
	}
}

func TestTextHindi(t *testing.T) {
	got := i18n.Text(domain.LangHindi, i18n.RegisterTitle)
	if got != "उपयोगकर्ता पंजीकरण" {
		t.Errorf("got %q, want %q", got, "उपयोगकर्ता पंजीकरण")
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	got := i18n.Text(domain.Language("fr"), i18n.WrongOTP)
	want := i18n.Text(domain.LangEnglish, i18n.WrongOTP)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Language
	}{
		{"hi", domain.LangHindi},
		{"en", domain.LangEnglish},
		{"", domain.LangEnglish},
		{"de", domain.LangEnglish},
	}
	for _, c := range cases {
		if got := domain.ParseLanguage(c.in); got != c.want {
			t.Errorf("ParseLanguage(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMissingKeyIsVisible(t *testing.T) {
	got := i18n.Text(domain.LangEnglish, i18n.Key("no_such_key"))
	if got != "no_such_key" {
		t.Errorf("got %q, want the key itself", got)
	}
}
