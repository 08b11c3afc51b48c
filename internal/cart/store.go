package cart

import "context"

// Store holds one cart per table session.
type Store interface {
	// Get returns the session's cart, or a fresh empty cart if none exists.
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}
