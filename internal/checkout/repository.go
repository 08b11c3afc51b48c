package checkout

import "context"

// Repository defines database operations for placed orders.
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	ListOrders(ctx context.Context) ([]Order, error)
}
