package store

import (
	"context"
	"testing"
)

// --------------------------------------------------
// Mock repository
// --------------------------------------------------

type mockStoreRepository struct {
	saved *Store
}

func (m *mockStoreRepository) Get(ctx context.Context) (*Store, error) {
	if m.saved == nil {
		return nil, ErrStoreNotFound
	}
	copied := *m.saved
	return &copied, nil
}

func (m *mockStoreRepository) Upsert(ctx context.Context, s *Store) error {
	copied := *s
	m.saved = &copied
	return nil
}

// --------------------------------------------------
// Get & update
// --------------------------------------------------

func TestGetFallsBackToDefaultBranding(t *testing.T) {
	service := NewService(&mockStoreRepository{}, nil)

	s, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Café Lumière" {
		t.Fatalf("expected default branding, got %s", s.Name)
	}
	if s.Theme.FontFamily != "Inter" {
		t.Fatalf("expected default theme, got %+v", s.Theme)
	}
}

func TestUpdateMergesPartialEdit(t *testing.T) {
	repo := &mockStoreRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	updated, err := service.Update(ctx, &Store{
		Name:  "Café Noir",
		Theme: Theme{PrimaryColor: "0 0% 10%"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Café Noir" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if updated.Theme.PrimaryColor != "0 0% 10%" {
		t.Fatalf("expected updated primary color, got %s", updated.Theme.PrimaryColor)
	}
	// Untouched fields keep their previous values.
	if updated.Theme.FontFamily != "Inter" {
		t.Fatalf("expected font preserved, got %s", updated.Theme.FontFamily)
	}
	if updated.Logo == "" {
		t.Fatal("expected logo preserved")
	}
	if repo.saved == nil || repo.saved.Name != "Café Noir" {
		t.Fatal("expected merged branding persisted")
	}
}

func TestUpdateIsCumulative(t *testing.T) {
	repo := &mockStoreRepository{}
	service := NewService(repo, nil)
	ctx := context.Background()

	service.Update(ctx, &Store{Name: "Café Noir"})
	second, err := service.Update(ctx, &Store{Theme: Theme{AccentColor: "10 90% 60%"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Name != "Café Noir" {
		t.Fatalf("earlier edit lost: %s", second.Name)
	}
	if second.Theme.AccentColor != "10 90% 60%" {
		t.Fatalf("expected accent applied, got %s", second.Theme.AccentColor)
	}
}
