package checkout

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders
			(id, table_number, items, subtotal, tax, total, status, card_last4, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		o.ID,
		o.TableNumber,
		items,
		o.Subtotal.StringFixed(2),
		o.Tax.StringFixed(2),
		o.Total.StringFixed(2),
		o.Status,
		o.CardLast4,
		o.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, table_number, items, subtotal::text, tax::text, total::text,
		       status, card_last4, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o                    Order
			items                []byte
			subtotal, tax, total string
		)
		err := rows.Scan(
			&o.ID, &o.TableNumber, &items,
			&subtotal, &tax, &total,
			&o.Status, &o.CardLast4, &o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		if o.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, err
		}
		if o.Tax, err = decimal.NewFromString(tax); err != nil {
			return nil, err
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
