package cart

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
)

// LineItem is one row of the cart: a product configured a specific way.
// Product and Selections are frozen at add time; Quantity is the only
// field that changes afterwards.
type LineItem struct {
	Product    catalog.Product
	Quantity   int
	Selections selection.Selections
	Notes      string
}

// UnitPrice is the base price plus every selected option's delta, each
// counted once per unit regardless of how many options the group allows.
func (li LineItem) UnitPrice() decimal.Decimal {
	price := li.Product.Price
	for _, opts := range li.Selections {
		for _, opt := range opts {
			price = price.Add(opt.Price)
		}
	}
	return price
}

func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Key is the line's identity: product id, normalized notes, and the
// canonical selection sets. Two adds with equal keys merge into one line.
func (li LineItem) Key() string {
	return identityKey(li.Product.ID, li.Notes, li.Selections)
}

// identityKey canonicalizes before comparing: notes are trimmed so empty
// and absent collapse to one value, groups with empty selections drop out,
// and option names are sorted so selection order never matters.
func identityKey(productID, notes string, sel selection.Selections) string {
	canonical := make(map[string][]string, len(sel))
	for group, opts := range sel {
		if len(opts) == 0 {
			continue
		}
		names := make([]string, 0, len(opts))
		seen := make(map[string]bool, len(opts))
		for _, opt := range opts {
			if !seen[opt.Name] {
				seen[opt.Name] = true
				names = append(names, opt.Name)
			}
		}
		sort.Strings(names)
		canonical[group] = names
	}

	// json.Marshal sorts map keys, so the encoding is deterministic.
	encoded, _ := json.Marshal(struct {
		ProductID  string              `json:"p"`
		Notes      string              `json:"n"`
		Selections map[string][]string `json:"s"`
	}{
		ProductID:  productID,
		Notes:      strings.TrimSpace(notes),
		Selections: canonical,
	})
	return string(encoded)
}
