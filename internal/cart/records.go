package cart

import (
	"context"
	"errors"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
)

// LineRecord is the compact serialized form of a line item: product id,
// quantity, selected option names per group, and optional notes. Prices
// are re-resolved against the catalog on rehydration so stale snapshots
// never survive a catalog edit.
type LineRecord struct {
	ProductID  string              `json:"product_id"`
	Quantity   int                 `json:"quantity"`
	Selections map[string][]string `json:"selections,omitempty"`
	Notes      string              `json:"notes,omitempty"`
}

// Records flattens a cart for persistence.
func Records(c *Cart) []LineRecord {
	lines := c.Lines()
	records := make([]LineRecord, 0, len(lines))
	for _, line := range lines {
		rec := LineRecord{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Notes:     line.Notes,
		}
		for group, opts := range line.Selections {
			if len(opts) == 0 {
				continue
			}
			if rec.Selections == nil {
				rec.Selections = make(map[string][]string)
			}
			for _, opt := range opts {
				rec.Selections[group] = append(rec.Selections[group], opt.Name)
			}
		}
		records = append(records, rec)
	}
	return records
}

// Rehydrate rebuilds a cart from records against the current catalog.
// Lines whose product or options no longer exist are dropped.
func Rehydrate(
	ctx context.Context,
	records []LineRecord,
	repo catalog.Repository,
) (*Cart, error) {

	c := New()
	for _, rec := range records {
		p, err := repo.GetProduct(ctx, rec.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		sel := make(selection.Selections, len(rec.Selections))
		valid := true
		for group, names := range rec.Selections {
			if err := selection.Apply(p, sel, group, names); err != nil {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		if _, err := c.AddItem(p, rec.Quantity, sel, rec.Notes); err != nil {
			continue
		}
	}
	return c, nil
}
