// Package store persists the whole application document as one JSON value.
//
// The document is read and rewritten wholesale on every mutation. There is no
// locking around the read-modify-write cycle: the service models a
// single-tenant kiosk session, and concurrent writers would need a mutex or
// actor boundary in front of the store.
package store

import (
	"context"

	"github.com/flyai/flyai/internal/domain"
)

// DocumentStore loads and saves the single {user, bookings} document.
type DocumentStore interface {
	// Load returns the stored document, or the empty default when nothing
	// has been saved yet.
	Load(ctx context.Context) (*domain.Document, error)

	// Save overwrites the whole document; the next Load sees this content.
	Save(ctx context.Context, doc *domain.Document) error
}
