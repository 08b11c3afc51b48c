package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

var ErrStorageNotConfigured = errors.New("object storage not configured")

type Service struct {
	repo    Repository
	storage Storage
}

// NewService wires the catalog. storage may be nil, in which case image
// uploads are rejected.
func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Browsing
// --------------------------------------------------

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// Products lists the catalog, optionally filtered by category.
func (s *Service) Products(ctx context.Context, categoryID string) ([]Product, error) {
	if categoryID == "" {
		return s.repo.ListProducts(ctx)
	}
	return s.repo.ListProductsByCategory(ctx, categoryID)
}

func (s *Service) Popular(ctx context.Context) ([]Product, error) {
	return s.repo.ListPopular(ctx)
}

func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// --------------------------------------------------
// Admin: categories
// --------------------------------------------------

func (s *Service) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	if c.Name == "" {
		return nil, errors.New("category name is required")
	}
	if c.ID == "" {
		c.ID = slugify(c.Name)
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, c *Category) error {
	if c.ID == "" || c.Name == "" {
		return errors.New("missing required fields")
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

// --------------------------------------------------
// Admin: products
// --------------------------------------------------

func (s *Service) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = slugify(p.Name)
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	if p.ID == "" {
		return errors.New("product id is required")
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

// --------------------------------------------------
// Image upload
// --------------------------------------------------

func (s *Service) SetProductImage(
	ctx context.Context,
	productID string,
	body io.Reader,
	filename string,
	contentType string,
) (string, error) {

	if s.storage == nil {
		return "", ErrStorageNotConfigured
	}
	if err := ValidateImageExtension(filename); err != nil {
		return "", err
	}

	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf(
		"products/%s/%s%s",
		productID,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return "", err
	}

	p.Image = url
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// Validation
// --------------------------------------------------

func validateProduct(p *Product) error {
	if p.Name == "" || p.CategoryID == "" {
		return errors.New("missing required fields")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	seenGroups := make(map[string]bool, len(p.Customizations))
	for _, g := range p.Customizations {
		if g.Name == "" {
			return errors.New("customization group name is required")
		}
		if seenGroups[g.Name] {
			return fmt.Errorf("duplicate customization group %q", g.Name)
		}
		seenGroups[g.Name] = true
		if len(g.Options) == 0 {
			return fmt.Errorf("customization group %q has no options", g.Name)
		}
		seen := make(map[string]bool, len(g.Options))
		for _, opt := range g.Options {
			if opt.Name == "" {
				return fmt.Errorf("customization group %q has an unnamed option", g.Name)
			}
			if seen[opt.Name] {
				return fmt.Errorf("duplicate option %q in group %q", opt.Name, g.Name)
			}
			seen[opt.Name] = true
			if opt.Price.LessThan(decimal.Zero) {
				return fmt.Errorf("option %q has a negative price", opt.Name)
			}
		}
	}
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
