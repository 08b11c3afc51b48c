package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// --------------------------------------------------
// Fake storage
// --------------------------------------------------

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

// --------------------------------------------------
// Browsing
// --------------------------------------------------

func TestProductsFilteredByCategory(t *testing.T) {
	service := NewService(NewSeededRepository(), nil)
	ctx := context.Background()

	coffee, err := service.Products(ctx, "coffee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range coffee {
		if p.CategoryID != "coffee" {
			t.Fatalf("product %s leaked from category %s", p.ID, p.CategoryID)
		}
	}

	all, err := service.Products(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) <= len(coffee) {
		t.Fatalf("expected unfiltered list to be larger: %d vs %d", len(all), len(coffee))
	}
}

func TestPopularListsOnlyFlaggedProducts(t *testing.T) {
	service := NewService(NewSeededRepository(), nil)

	popular, err := service.Popular(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(popular) == 0 {
		t.Fatal("seed catalog must contain popular products")
	}
	for _, p := range popular {
		if !p.Popular {
			t.Fatalf("product %s is not flagged popular", p.ID)
		}
	}
}

func TestProductNotFound(t *testing.T) {
	service := NewService(NewSeededRepository(), nil)

	_, err := service.Product(context.Background(), "flat-white")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

// --------------------------------------------------
// Admin: create & validate
// --------------------------------------------------

func TestCreateCategorySlugifiesName(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	c, err := service.CreateCategory(context.Background(), &Category{Name: "Cold  Brews"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "cold-brews" {
		t.Fatalf("expected slug cold-brews, got %s", c.ID)
	}
}

func TestCreateProductValidation(t *testing.T) {
	cases := []struct {
		name    string
		product Product
	}{
		{"missing name", Product{CategoryID: "coffee"}},
		{"missing category", Product{Name: "Flat White"}},
		{"negative price", Product{
			Name: "Flat White", CategoryID: "coffee",
			Price: decimal.RequireFromString("-1"),
		}},
		{"group without options", Product{
			Name: "Flat White", CategoryID: "coffee",
			Customizations: []CustomizationGroup{{Name: "Size"}},
		}},
		{"duplicate group names", Product{
			Name: "Flat White", CategoryID: "coffee",
			Customizations: []CustomizationGroup{
				{Name: "Size", Options: []Option{{Name: "Small"}}},
				{Name: "Size", Options: []Option{{Name: "Large"}}},
			},
		}},
		{"duplicate option names", Product{
			Name: "Flat White", CategoryID: "coffee",
			Customizations: []CustomizationGroup{{
				Name: "Size",
				Options: []Option{
					{Name: "Small"},
					{Name: "Small"},
				},
			}},
		}},
		{"negative option price", Product{
			Name: "Flat White", CategoryID: "coffee",
			Customizations: []CustomizationGroup{{
				Name: "Size",
				Options: []Option{
					{Name: "Small", Price: decimal.RequireFromString("-0.5")},
				},
			}},
		}},
	}

	service := NewService(NewMemoryRepository(), nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateProduct(context.Background(), &tc.product); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateProductSlugifiesName(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	p, err := service.CreateProduct(context.Background(), &Product{
		Name:       "Iced Flat White",
		CategoryID: "coffee",
		Price:      decimal.RequireFromString("4.95"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "iced-flat-white" {
		t.Fatalf("expected slug iced-flat-white, got %s", p.ID)
	}
}

// --------------------------------------------------
// Image upload
// --------------------------------------------------

func TestSetProductImageWithoutStorage(t *testing.T) {
	service := NewService(NewSeededRepository(), nil)

	_, err := service.SetProductImage(
		context.Background(), "espresso",
		bytes.NewReader(nil), "espresso.png", "image/png",
	)
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}
}

func TestSetProductImageUpdatesProduct(t *testing.T) {
	repo := NewSeededRepository()
	storage := &fakeStorage{}
	service := NewService(repo, storage)
	ctx := context.Background()

	url, err := service.SetProductImage(
		ctx, "espresso",
		bytes.NewReader([]byte("png bytes")), "Espresso.PNG", "image/png",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(storage.keys) != 1 {
		t.Fatalf("expected one upload, got %d", len(storage.keys))
	}
	key := storage.keys[0]
	if !strings.HasPrefix(key, "products/espresso/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected object key: %s", key)
	}

	p, err := repo.GetProduct(ctx, "espresso")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Image != url {
		t.Fatalf("expected image %s, got %s", url, p.Image)
	}
}

func TestSetProductImageRejectsBadExtension(t *testing.T) {
	service := NewService(NewSeededRepository(), &fakeStorage{})

	_, err := service.SetProductImage(
		context.Background(), "espresso",
		bytes.NewReader(nil), "malware.exe", "application/octet-stream",
	)
	if err == nil {
		t.Fatal("expected extension validation error")
	}
}

func TestValidateImageExtension(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.webp", "e.gif"} {
		if err := ValidateImageExtension(name); err != nil {
			t.Fatalf("expected %s accepted: %v", name, err)
		}
	}
	for _, name := range []string{"a.svg", "b.pdf", "noext"} {
		if err := ValidateImageExtension(name); err == nil {
			t.Fatalf("expected %s rejected", name)
		}
	}
}
