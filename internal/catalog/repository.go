package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Repository defines all database operations for the catalog.
// The catalog is already-fetched, finite data; callers treat results as read-only.
type Repository interface {

	// -------------------------------
	// Browsing
	// -------------------------------
	ListCategories(ctx context.Context) ([]Category, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	ListPopular(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)

	// -------------------------------
	// Admin CRUD
	// -------------------------------
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}
