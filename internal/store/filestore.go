package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flyai/flyai/internal/domain"
)

// FileStore keeps the document in a single JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document file: %w", err)
	}
	if doc.Bookings == nil {
		doc.Bookings = []domain.Booking{}
	}
	return doc, nil
}

func (s *FileStore) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".flyai-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}
