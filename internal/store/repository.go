package store

import (
	"context"
	"errors"
)

var ErrStoreNotFound = errors.New("store not found")

type Repository interface {
	Get(ctx context.Context) (*Store, error)
	Upsert(ctx context.Context, s *Store) error
}
