// Package registration turns an unauthenticated phone number into a verified
// user profile via a one-time passcode.
package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/otp"
	"github.com/flyai/flyai/internal/store"
	"github.com/flyai/flyai/pkg/events"
	"github.com/flyai/flyai/pkg/logger"
)

type Service struct {
	store  store.DocumentStore
	sender otp.Sender
	bus    events.Publisher

	// Single pending slot, process lifetime only. A newer Begin overwrites
	// it; no expiry, no attempt limit. Last write wins under concurrency —
	// acceptable for the single-tenant kiosk model this serves.
	pending *domain.PendingVerification
}

func NewService(store store.DocumentStore, sender otp.Sender, bus events.Publisher) *Service {
	return &Service{
		store:  store,
		sender: sender,
		bus:    bus,
	}
}

// Begin issues a fresh 4-digit code for the phone number and makes it the
// sole pending verification. The code is returned so the caller can display
// it inline (delivery is a mock). Nothing is persisted yet.
//
// If a user profile already exists, Begin returns ErrAlreadyRegistered and
// the caller must short-circuit to the booking flow.
func (s *Service) Begin(ctx context.Context, phone string, lang domain.Language) (string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load document: %w", err)
	}
	if doc.User != nil {
		return "", domain.ErrAlreadyRegistered
	}

	code := otp.Generate()
	s.pending = &domain.PendingVerification{
		Phone:    phone,
		Code:     code,
		Language: lang,
	}

	if err := s.sender.Send(phone, code); err != nil {
		logger.ErrorContext(ctx, "Failed to deliver OTP", "error", err, "phone", phone)
		// The code is still pending and displayed inline; delivery is
		// best-effort.
	}

	return code, nil
}

// Complete consumes the pending verification. It succeeds only when a
// verification is pending, its phone matches, and the submitted code equals
// the issued code exactly. On success the user profile is persisted and the
// pending slot cleared.
//
// On mismatch the pending code is left in place so the web flow can re-prompt
// with the same code.
func (s *Service) Complete(ctx context.Context, phone, code string) (*domain.UserProfile, error) {
	if s.pending == nil || s.pending.Phone != phone || s.pending.Code != code {
		return nil, domain.ErrCodeMismatch
	}

	user := &domain.UserProfile{
		Phone:    s.pending.Phone,
		Language: s.pending.Language,
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	doc.User = user
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.pending = nil

	event := events.UserRegisteredEvent{
		Phone:        user.Phone,
		Language:     string(user.Language),
		RegisteredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, events.UserRegistered, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user registered event", "error", err, "phone", user.Phone)
	}

	return user, nil
}

// Pending reports whether a verification is currently pending and, if so,
// the phone number and issued code it holds.
func (s *Service) Pending() (*domain.PendingVerification, bool) {
	if s.pending == nil {
		return nil, false
	}
	p := *s.pending
	return &p, true
}
