package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/store"
)

func TestLoadMissingFileReturnsEmptyDocument(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.User != nil {
		t.Errorf("user: got %+v, want nil", doc.User)
	}
	if len(doc.Bookings) != 0 {
		t.Errorf("bookings: got %d, want 0", len(doc.Bookings))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := store.NewFileStore(path)
	ctx := context.Background()

	doc := &domain.Document{
		User: &domain.UserProfile{Phone: "123", Language: domain.LangHindi},
		Bookings: []domain.Booking{
			{
				ID:        1,
				Crop:      "धान",
				FieldSize: "1",
				Region:    "दिल्ली",
				Datetime:  "2024-01-01 10:00",
				Status:    domain.StatusScheduled,
			},
		},
	}
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User == nil || loaded.User.Phone != "123" || loaded.User.Language != domain.LangHindi {
		t.Errorf("user: got %+v", loaded.User)
	}
	if len(loaded.Bookings) != 1 {
		t.Fatalf("bookings: got %d, want 1", len(loaded.Bookings))
	}
	b := loaded.Bookings[0]
	if b.Crop != "धान" || b.Datetime != "2024-01-01 10:00" || b.Status != domain.StatusScheduled {
		t.Errorf("booking: got %+v", b)
	}
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := store.NewFileStore(path)
	ctx := context.Background()

	first := &domain.Document{
		User:     &domain.UserProfile{Phone: "111", Language: domain.LangEnglish},
		Bookings: []domain.Booking{{ID: 1, Crop: "Apple", Datetime: "2025-01-01 09:00", Status: domain.StatusScheduled}},
	}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := &domain.Document{
		User:     &domain.UserProfile{Phone: "222", Language: domain.LangHindi},
		Bookings: []domain.Booking{},
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User.Phone != "222" {
		t.Errorf("phone: got %q, want %q", loaded.User.Phone, "222")
	}
	if len(loaded.Bookings) != 0 {
		t.Errorf("bookings: got %d, want 0", len(loaded.Bookings))
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "data.json"))

	if err := s.Save(context.Background(), domain.NewDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents: got %v, want [data.json]", names)
	}
}
