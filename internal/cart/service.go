package cart

import (
	"context"
	"fmt"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/notify"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
)

// Service is the ledger boundary the HTTP layer talks to: it resolves the
// session's cart, gates adds behind the selection validator, and reports
// mutations to the notification sink.
type Service struct {
	store    Store
	catalog  catalog.Repository
	notifier notify.Notifier
}

func NewService(store Store, repo catalog.Repository, notifier notify.Notifier) *Service {
	return &Service{
		store:    store,
		catalog:  repo,
		notifier: notifier,
	}
}

func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.store.Get(ctx, sessionID)
}

// --------------------------------------------------
// Add to cart
// --------------------------------------------------
func (s *Service) AddItem(
	ctx context.Context,
	sessionID string,
	productID string,
	quantity int,
	selections map[string][]string,
	notes string,
) (*Cart, error) {

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Defaults first, then the caller's choices on top, mirroring how the
	// product detail screen builds its selection state.
	sel := selection.Initialize(p)
	for group, names := range selections {
		if err := selection.Apply(p, sel, group, names); err != nil {
			return nil, err
		}
	}

	if missing := selection.Unsatisfied(p, sel); len(missing) > 0 {
		return nil, &IncompleteSelectionError{Missing: missing}
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := c.AddItem(p, quantity, sel, notes); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.notifier.Notify(
		"Added to cart",
		fmt.Sprintf("%d × %s added to your order", quantity, p.Name),
	)
	return c, nil
}

// --------------------------------------------------
// Quantity & removal
// --------------------------------------------------
func (s *Service) UpdateQuantity(
	ctx context.Context,
	sessionID string,
	index int,
	quantity int,
) (*Cart, error) {

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateQuantity(index, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveItem(
	ctx context.Context,
	sessionID string,
	index int,
) (*Cart, error) {

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	removed, err := c.RemoveItem(index)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.notifier.Notify(
		"Item removed",
		fmt.Sprintf("%s removed from your order", removed.Product.Name),
	)
	return c, nil
}

// --------------------------------------------------
// Clear
// --------------------------------------------------
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.notifier.Notify("Cart cleared", "All items have been removed from your order")
	return nil
}
