package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the storefront record. A single-store deployment keeps
// exactly one row; the newest wins if an older row lingers.
func (r *PostgresRepository) Get(ctx context.Context) (*Store, error) {
	var (
		s     Store
		theme []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(logo, ''), theme, updated_at
		FROM stores
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(&s.ID, &s.Name, &s.Logo, &theme, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	if len(theme) > 0 {
		if err := json.Unmarshal(theme, &s.Theme); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *Store) error {
	theme, err := json.Marshal(s.Theme)
	if err != nil {
		return err
	}

	s.UpdatedAt = time.Now().UTC()
	_, err = r.db.Exec(ctx, `
		INSERT INTO stores (id, name, logo, theme, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = $2, logo = $3, theme = $4, updated_at = $5
	`, s.ID, s.Name, s.Logo, theme, s.UpdatedAt)
	return err
}
