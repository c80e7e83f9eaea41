package otp_test

import (
	"testing"

	"github.com/flyai/flyai/internal/otp"
)

func TestGenerateIsFourDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := otp.Generate()
		if len(code) != 4 {
			t.Fatalf("code %q: got %d characters, want 4", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
	}
}
