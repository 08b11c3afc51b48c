package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps the catalog in process memory.
// Used for the seed binary, local development, and tests.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories map[string]Category
	products   map[string]Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		categories: make(map[string]Category),
		products:   make(map[string]Product),
	}
}

// NewSeededRepository returns a memory repository preloaded with the default store catalog.
func NewSeededRepository() *MemoryRepository {
	r := NewMemoryRepository()
	ctx := context.Background()
	for _, c := range DefaultCategories() {
		c := c
		_ = r.CreateCategory(ctx, &c)
	}
	for _, p := range DefaultProducts() {
		p := p
		_ = r.CreateProduct(ctx, &p)
	}
	return r
}

func (r *MemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *MemoryRepository) ListProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(Product) bool { return true }), nil
}

func (r *MemoryRepository) ListProductsByCategory(
	ctx context.Context,
	categoryID string,
) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *MemoryRepository) ListPopular(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p Product) bool { return p.Popular }), nil
}

func (r *MemoryRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) CreateCategory(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *MemoryRepository) UpdateCategory(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		return ErrCategoryNotFound
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *MemoryRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *MemoryRepository) CreateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) UpdateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// collect requires the read lock to be held.
func (r *MemoryRepository) collect(keep func(Product) bool) []Product {
	var products []Product
	for _, p := range r.products {
		if keep(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].CategoryID != products[j].CategoryID {
			return products[i].CategoryID < products[j].CategoryID
		}
		return products[i].Name < products[j].Name
	})
	return products
}
