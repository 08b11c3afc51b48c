package cart

import (
	"context"
	"testing"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

func TestRecordsRoundTripPreservesIdentityAndTotals(t *testing.T) {
	repo := catalog.NewSeededRepository()
	ctx := context.Background()
	p := cappuccino(t)

	c := New()
	c.AddItem(p, 2, pick(t, p, map[string][]string{
		"Size":    {"Large"},
		"Add-ins": {"Extra Shot", "Vanilla Syrup"},
	}), "extra hot")
	c.AddItem(p, 1, pick(t, p, nil), "")

	restored, err := Rehydrate(ctx, Records(c), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if restored.Len() != c.Len() {
		t.Fatalf("expected %d lines, got %d", c.Len(), restored.Len())
	}
	if !restored.Subtotal().Equal(c.Subtotal()) {
		t.Fatalf("subtotal changed across round trip: %s vs %s",
			c.Subtotal(), restored.Subtotal())
	}

	// Identity keys must survive: adding the same line to the restored
	// cart merges instead of appending.
	restored.AddItem(p, 1, pick(t, p, map[string][]string{
		"Size":    {"Large"},
		"Add-ins": {"Vanilla Syrup", "Extra Shot"},
	}), "extra hot")
	if restored.Len() != c.Len() {
		t.Fatalf("expected merge into existing line, got %d lines", restored.Len())
	}
}

func TestRehydrateDropsUnknownProducts(t *testing.T) {
	repo := catalog.NewSeededRepository()

	records := []LineRecord{
		{ProductID: "cappuccino", Quantity: 1},
		{ProductID: "discontinued-special", Quantity: 3},
	}
	c, err := Rehydrate(context.Background(), records, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected the stale line dropped, got %d lines", c.Len())
	}
}

func TestRehydrateDropsLinesWithRemovedOptions(t *testing.T) {
	repo := catalog.NewSeededRepository()

	records := []LineRecord{
		{
			ProductID:  "cappuccino",
			Quantity:   1,
			Selections: map[string][]string{"Size": {"Grande"}},
		},
		{
			ProductID:  "espresso",
			Quantity:   1,
			Selections: map[string][]string{"Size": {"Double"}},
		},
	}
	c, err := Rehydrate(context.Background(), records, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected one surviving line, got %d", c.Len())
	}

	line, _ := c.Line(0)
	if line.Product.ID != "espresso" {
		t.Fatalf("wrong line survived: %s", line.Product.ID)
	}
}

func TestRehydrateCartWithoutSelections(t *testing.T) {
	repo := catalog.NewSeededRepository()

	records := []LineRecord{{ProductID: "croissant", Quantity: 2, Notes: "warm please"}}
	c, err := Rehydrate(context.Background(), records, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, _ := c.Line(0)
	if line.Quantity != 2 || line.Notes != "warm please" {
		t.Fatalf("unexpected line: %+v", line)
	}
}
