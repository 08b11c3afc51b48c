package table

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *Table) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO tables (id, number, seats, location)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, t.ID, t.Number, t.Seats, t.Location).Scan(&t.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Table, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, seats, location, COALESCE(qr_code_url, ''), created_at
		FROM tables
		ORDER BY number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		err := rows.Scan(&t.ID, &t.Number, &t.Seats, &t.Location, &t.QRCodeURL, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Table, error) {
	var t Table
	err := r.db.QueryRow(ctx, `
		SELECT id, number, seats, location, COALESCE(qr_code_url, ''), created_at
		FROM tables
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Number, &t.Seats, &t.Location, &t.QRCodeURL, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) SetQRCodeURL(ctx context.Context, id, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tables SET qr_code_url = $2 WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTableNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTableNotFound
	}
	return nil
}
