package table

import (
	"context"
	"errors"
)

var ErrTableNotFound = errors.New("table not found")

type Repository interface {
	Create(ctx context.Context, t *Table) error
	List(ctx context.Context) ([]Table, error)
	Get(ctx context.Context, id string) (*Table, error)
	SetQRCodeURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
}
