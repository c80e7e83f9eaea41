// Package booking validates and records spray bookings for the registered
// user.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/store"
	"github.com/flyai/flyai/pkg/events"
	"github.com/flyai/flyai/pkg/logger"
)

type Service struct {
	store store.DocumentStore
	bus   events.Publisher
}

func NewService(store store.DocumentStore, bus events.Publisher) *Service {
	return &Service{
		store: store,
		bus:   bus,
	}
}

// Submit validates the request and appends a new booking to the history.
//
// The datetime must match the canonical "YYYY-MM-DD HH:MM" layout; anything
// else returns ErrBadDateFormat and leaves the document untouched. The stored
// datetime is re-formatted through the same layout, so storing an
// already-canonical value is idempotent. IDs are count+1: strictly increasing
// from 1, never reused (deletion is unsupported).
func (s *Service) Submit(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc.User == nil {
		return nil, domain.ErrNotRegistered
	}

	parsed, err := time.Parse(domain.DateTimeLayout, req.Datetime)
	if err != nil {
		return nil, domain.ErrBadDateFormat
	}

	b := domain.Booking{
		ID:        len(doc.Bookings) + 1,
		Crop:      req.Crop,
		FieldSize: req.FieldSize,
		Region:    req.Region,

		District:      req.District,
		Village:       req.Village,
		NettingStatus: req.NettingStatus,
		TerrainType:   req.TerrainType,
		SprayType:     req.SprayType,

		Datetime: parsed.Format(domain.DateTimeLayout),
		Status:   domain.StatusScheduled,
	}

	doc.Bookings = append(doc.Bookings, b)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	event := events.BookingCreatedEvent{
		BookingID:    b.ID,
		Crop:         b.Crop,
		Region:       b.Region,
		ScheduledFor: b.Datetime,
		CreatedAt:    time.Now(),
	}
	if err := s.bus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", b.ID)
	}

	return &b, nil
}

// List returns the booking history in insertion order. It is read-only and
// gated the same way as Submit: no registered user, no booking data.
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc.User == nil {
		return nil, domain.ErrNotRegistered
	}
	return doc.Bookings, nil
}

// User returns the registered profile, or ErrNotRegistered when none exists.
func (s *Service) User(ctx context.Context) (*domain.UserProfile, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc.User == nil {
		return nil, domain.ErrNotRegistered
	}
	return doc.User, nil
}
