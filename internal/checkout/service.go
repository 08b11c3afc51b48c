package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thinknumbers/order-scanner-delight/internal/cart"
	"github.com/thinknumbers/order-scanner-delight/internal/notify"
)

// TaxRate is the fixed presentation-time surcharge applied at checkout.
// The cart ledger itself never includes tax.
var TaxRate = decimal.RequireFromString("0.08")

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	carts    *cart.Service
	repo     Repository
	notifier notify.Notifier

	// processingDelay simulates the payment provider round trip.
	processingDelay time.Duration
}

func NewService(
	carts *cart.Service,
	repo Repository,
	notifier notify.Notifier,
	processingDelay time.Duration,
) *Service {
	return &Service{
		carts:           carts,
		repo:            repo,
		notifier:        notifier,
		processingDelay: processingDelay,
	}
}

// Totals computes the presentation totals for the session's cart.
func (s *Service) Totals(ctx context.Context, sessionID string) (subtotal, tax, total decimal.Decimal, err error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	subtotal = c.Subtotal()
	tax = subtotal.Mul(TaxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total, nil
}

// PlaceOrder runs the mocked payment flow: validate the card's format,
// wait out the simulated provider delay, persist the order, clear the
// cart, and notify. Payment never declines.
func (s *Service) PlaceOrder(
	ctx context.Context,
	sessionID string,
	tableNumber string,
	card Card,
) (*Order, error) {

	if err := card.Validate(); err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := c.Subtotal()
	tax := subtotal.Mul(TaxRate).Round(2)

	if s.processingDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.processingDelay):
		}
	}

	order := &Order{
		ID:          uuid.New().String(),
		TableNumber: tableNumber,
		Items:       cart.Records(c),
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal.Add(tax),
		Status:      StatusPlaced,
		CardLast4:   card.Last4(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	s.notifier.Notify(
		"Order Placed!",
		"Your order has been successfully placed. Thank you for your purchase!",
	)
	return order, nil
}

func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}
