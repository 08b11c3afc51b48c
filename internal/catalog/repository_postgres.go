package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(image, '')
		FROM categories
		ORDER BY position, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, image)
		VALUES ($1, $2, $3)
	`, c.ID, c.Name, c.Image)
	return err
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $2, image = $3
		WHERE id = $1
	`, c.ID, c.Name, c.Image)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// --------------------------------------------------
// PRODUCTS
// --------------------------------------------------

const productColumns = `
	id, name, description, price::text, COALESCE(image, ''),
	category_id, customizations, popular
`

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY category_id, name
	`)
}

func (r *PostgresRepository) ListProductsByCategory(
	ctx context.Context,
	categoryID string,
) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category_id = $1
		ORDER BY name
	`, categoryID)
}

func (r *PostgresRepository) ListPopular(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE popular
		ORDER BY name
	`)
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *Product) error {
	customizations, err := marshalCustomizations(p.Customizations)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products
			(id, name, description, price, image, category_id, customizations, popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Name, p.Description, p.Price.StringFixed(2), p.Image, p.CategoryID, customizations, p.Popular)
	return err
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *Product) error {
	customizations, err := marshalCustomizations(p.Customizations)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, image = $5,
		    category_id = $6, customizations = $7, popular = $8
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Price.StringFixed(2), p.Image, p.CategoryID, customizations, p.Popular)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// --------------------------------------------------
// Scanning helpers
// --------------------------------------------------

func (r *PostgresRepository) queryProducts(
	ctx context.Context,
	sql string,
	args ...any,
) ([]Product, error) {

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p              Product
		price          string
		customizations []byte
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &price, &p.Image,
		&p.CategoryID, &customizations, &p.Popular,
	)
	if err != nil {
		return nil, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}

	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &p.Customizations); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func marshalCustomizations(groups []CustomizationGroup) ([]byte, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	return json.Marshal(groups)
}
