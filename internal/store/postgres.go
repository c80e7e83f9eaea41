package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flyai/flyai/internal/domain"
)

// PostgresStore keeps the document as a single jsonb row, for deployments
// that want the state off the local disk. The load/save contract is the same
// as the file backend.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the backing table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS flyai_document(
			id int PRIMARY KEY CHECK (id = 1),
			doc jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := s.pool.Exec(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to ensure document table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*domain.Document, error) {
	const q = `SELECT doc FROM flyai_document WHERE id = 1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var raw []byte
	err := s.pool.QueryRow(ctx, q).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document row: %w", err)
	}
	if doc.Bookings == nil {
		doc.Bookings = []domain.Booking{}
	}
	return doc, nil
}

func (s *PostgresStore) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	const q = `
		INSERT INTO flyai_document(id, doc, updated_at)
		VALUES(1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := s.pool.Exec(ctx, q, raw); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
