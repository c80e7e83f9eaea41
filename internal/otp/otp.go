// Package otp generates and "delivers" one-time passcodes. Delivery is a mock:
// the code is printed for out-of-band display, never sent to a real device.
package otp

import (
	"fmt"
	"time"

	"github.com/flyai/flyai/pkg/logger"
)

// Generate returns a 4-digit numeric code.
func Generate() string {
	code := time.Now().UnixNano()%9000 + 1000
	return fmt.Sprintf("%04d", code)
}

// Sender delivers a passcode to a phone number.
type Sender interface {
	Send(phone, code string) error
}

// DevSender prints the passcode instead of sending an SMS.
type DevSender struct{}

func NewDevSender() *DevSender {
	return &DevSender{}
}

func (d *DevSender) Send(phone, code string) error {
	logger.Info("[DEV SMS] OTP issued", "to", phone, "code", code)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📱 OTP SMS (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s\n"+
		"Code: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		phone, code)

	return nil
}
