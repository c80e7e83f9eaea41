package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/flyai/flyai/pkg/logger"
)

// Publisher emits domain events for downstream consumers (notifications,
// analytics). Publishing is best-effort: callers log failures and move on.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// Event subjects
const (
	UserRegistered = "flyai.user.registered"
	BookingCreated = "flyai.booking.created"
)

type UserRegisteredEvent struct {
	Phone        string    `json:"phone"`
	Language     string    `json:"language"`
	RegisteredAt time.Time `json:"registered_at"`
}

type BookingCreatedEvent struct {
	BookingID    int       `json:"booking_id"`
	Crop         string    `json:"crop"`
	Region       string    `json:"region"`
	ScheduledFor string    `json:"scheduled_for"`
	CreatedAt    time.Time `json:"created_at"`
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// NoopBus discards events. Used when NATS_URL is unset and by the CLI.
type NoopBus struct{}

func NewNoopBus() *NoopBus { return &NoopBus{} }

func (NoopBus) Publish(ctx context.Context, subject string, data interface{}) error { return nil }

func (NoopBus) Close() error { return nil }
