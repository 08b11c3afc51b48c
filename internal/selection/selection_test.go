package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

func product(t *testing.T, id string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewSeededRepository().GetProduct(context.Background(), id)
	if err != nil {
		t.Fatalf("seed product %s: %v", id, err)
	}
	return p
}

// --------------------------------------------------
// Initialize
// --------------------------------------------------

func TestInitializePreselectsRequiredSingleChoice(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	size := s["Size"]
	if len(size) != 1 || size[0].Name != "Small" {
		t.Fatalf("expected Size preselected to Small, got %v", size)
	}
	if len(s["Milk"]) != 0 {
		t.Fatalf("optional group must start empty, got %v", s["Milk"])
	}
	if len(s["Add-ins"]) != 0 {
		t.Fatalf("multiple group must start empty, got %v", s["Add-ins"])
	}
}

func TestInitializeSkipsRequiredGroupWithoutOptions(t *testing.T) {
	// Validation rejects option-less groups on the admin path, but rows
	// written around it must not crash the storefront.
	p := &catalog.Product{
		ID:   "broken",
		Name: "Broken",
		Customizations: []catalog.CustomizationGroup{
			{Name: "Size", Required: true},
		},
	}

	s := Initialize(p)
	if len(s["Size"]) != 0 {
		t.Fatalf("expected no preselection, got %v", s["Size"])
	}
	if Evaluate(p, s) != Incomplete {
		t.Fatal("an unsatisfiable required group must read as incomplete")
	}
}

func TestInitializedSelectionsAreComplete(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	if !IsValid(p, s) {
		t.Fatal("defaults must satisfy every required group")
	}
	if Evaluate(p, s) != Complete {
		t.Fatal("expected Complete state from defaults")
	}
}

func TestOptionalOnlyProductIsAlwaysValid(t *testing.T) {
	p := product(t, "croissant")

	if Evaluate(p, make(Selections)) != Complete {
		t.Fatal("a product without required groups is complete with nothing chosen")
	}
	if Evaluate(p, Initialize(p)) != Complete {
		t.Fatal("a product without required groups is complete from defaults")
	}
}

// --------------------------------------------------
// Apply
// --------------------------------------------------

func TestApplyReplacesGroupSelection(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	if err := Apply(p, s, "Size", []string{"Large"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s["Size"][0].Name; got != "Large" {
		t.Fatalf("expected Large, got %s", got)
	}
}

func TestApplyRejectsUnknownGroup(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	err := Apply(p, s, "Toppings", []string{"Sprinkles"})
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestApplyRejectsUnknownOption(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	err := Apply(p, s, "Size", []string{"Venti"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestApplyEnforcesSingleChoiceArity(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	err := Apply(p, s, "Size", []string{"Small", "Large"})
	if !errors.Is(err, ErrSingleChoice) {
		t.Fatalf("expected ErrSingleChoice, got %v", err)
	}
}

func TestApplyDeduplicatesRepeatedOptions(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	if err := Apply(p, s, "Add-ins", []string{"Extra Shot", "Extra Shot"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s["Add-ins"]) != 1 {
		t.Fatalf("expected one distinct option, got %v", s["Add-ins"])
	}
}

func TestApplyAllowsMultipleOptionsInMultipleGroup(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	if err := Apply(p, s, "Add-ins", []string{"Extra Shot", "Vanilla Syrup"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s["Add-ins"]) != 2 {
		t.Fatalf("expected two options, got %v", s["Add-ins"])
	}
}

// --------------------------------------------------
// Unsatisfied & Evaluate
// --------------------------------------------------

func TestClearingRequiredGroupMakesStateIncomplete(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	if err := Apply(p, s, "Size", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := Unsatisfied(p, s)
	if len(missing) != 1 || missing[0] != "Size" {
		t.Fatalf("expected [Size], got %v", missing)
	}
	if Evaluate(p, s) != Incomplete {
		t.Fatal("expected Incomplete state")
	}
}

func TestReselectingRestoresCompleteness(t *testing.T) {
	p := product(t, "cappuccino")
	s := Initialize(p)

	Apply(p, s, "Size", nil)
	if err := Apply(p, s, "Size", []string{"Medium"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Evaluate(p, s) != Complete {
		t.Fatal("expected Complete after reselecting the required group")
	}
}

func TestUnsatisfiedListsOnlyRequiredGroups(t *testing.T) {
	p := product(t, "blt-sandwich")
	s := make(Selections)

	missing := Unsatisfied(p, s)
	if len(missing) != 1 || missing[0] != "Bread" {
		t.Fatalf("expected [Bread], got %v", missing)
	}
}

func TestStateString(t *testing.T) {
	if Incomplete.String() != "INCOMPLETE" || Complete.String() != "COMPLETE" {
		t.Fatal("state labels must match the wire format")
	}
}
