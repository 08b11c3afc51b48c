package table

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
)

// --------------------------------------------------
// Mock repository
// --------------------------------------------------

type mockTableRepository struct {
	tables map[string]*Table
}

func newMockTableRepository() *mockTableRepository {
	return &mockTableRepository{tables: make(map[string]*Table)}
}

func (m *mockTableRepository) Create(ctx context.Context, t *Table) error {
	m.tables[t.ID] = t
	return nil
}

func (m *mockTableRepository) List(ctx context.Context) ([]Table, error) {
	out := make([]Table, 0, len(m.tables))
	for _, t := range m.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTableRepository) Get(ctx context.Context, id string) (*Table, error) {
	t, ok := m.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockTableRepository) SetQRCodeURL(ctx context.Context, id, u string) error {
	t, ok := m.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	t.QRCodeURL = u
	return nil
}

func (m *mockTableRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tables[id]; !ok {
		return ErrTableNotFound
	}
	delete(m.tables, id)
	return nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateAssignsID(t *testing.T) {
	service := NewService(newMockTableRepository(), "https://menu.example.com")

	created, err := service.Create(context.Background(), "12", 4, "patio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Number != "12" || created.Seats != 4 || created.Location != "patio" {
		t.Fatalf("unexpected table: %+v", created)
	}
}

func TestCreateValidation(t *testing.T) {
	service := NewService(newMockTableRepository(), "https://menu.example.com")
	ctx := context.Background()

	if _, err := service.Create(ctx, "", 4, ""); err == nil {
		t.Fatal("expected error for missing number")
	}
	if _, err := service.Create(ctx, "7", 0, ""); err == nil {
		t.Fatal("expected error for zero seats")
	}
}

// --------------------------------------------------
// QR generation
// --------------------------------------------------

func TestGenerateQREncodesMenuLink(t *testing.T) {
	repo := newMockTableRepository()
	service := NewService(repo, "https://menu.example.com")
	ctx := context.Background()

	created, err := service.Create(ctx, "7", 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.GenerateQR(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.QRCodeURL == "" {
		t.Fatal("expected QR code URL set")
	}

	parsed, err := url.Parse(updated.QRCodeURL)
	if err != nil {
		t.Fatalf("QR URL does not parse: %v", err)
	}
	if !strings.HasPrefix(updated.QRCodeURL, "https://api.qrserver.com/") {
		t.Fatalf("unexpected QR host: %s", updated.QRCodeURL)
	}
	if got := parsed.Query().Get("data"); got != "https://menu.example.com/menu?table=7" {
		t.Fatalf("unexpected encoded link: %s", got)
	}

	stored, _ := repo.Get(ctx, created.ID)
	if stored.QRCodeURL != updated.QRCodeURL {
		t.Fatal("QR URL must be persisted on the table")
	}
}

func TestGenerateQRUnknownTable(t *testing.T) {
	service := NewService(newMockTableRepository(), "https://menu.example.com")

	_, err := service.GenerateQR(context.Background(), "missing")
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}
