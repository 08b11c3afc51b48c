// Package cart is the ledger of a table session's order: it owns the line
// items, derives totals, and merges equivalent adds into one line.
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
)

// Cart is an ordered sequence of line items. It is owned by exactly one
// browsing session and mutated only through its methods; ItemCount and
// Subtotal are recomputed from the lines on every call, never stored.
type Cart struct {
	lines []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Lines returns a copy of the line items.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Line returns the item at i.
func (c *Cart) Line(i int) (LineItem, error) {
	if i < 0 || i >= len(c.lines) {
		return LineItem{}, ErrInvalidIndex
	}
	return c.lines[i], nil
}

// AddItem merges into an existing line when the identity key (product,
// selections, notes) matches, order-independently; otherwise it appends.
// Selections must already satisfy the selection validator: the ledger only
// uses them for identity and pricing.
func (c *Cart) AddItem(
	p *catalog.Product,
	quantity int,
	sel selection.Selections,
	notes string,
) (LineItem, error) {

	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}

	key := identityKey(p.ID, notes, sel)
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += quantity
			return c.lines[i], nil
		}
	}

	line := LineItem{
		Product:    *p,
		Quantity:   quantity,
		Selections: freeze(sel),
		Notes:      strings.TrimSpace(notes),
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateQuantity sets the line's quantity outright. A quantity of zero or
// below removes the line instead.
func (c *Cart) UpdateQuantity(i, quantity int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrInvalidIndex
	}
	if quantity <= 0 {
		_, err := c.RemoveItem(i)
		return err
	}
	c.lines[i].Quantity = quantity
	return nil
}

// RemoveItem removes the line at i; later lines shift down by one.
func (c *Cart) RemoveItem(i int) (LineItem, error) {
	if i < 0 || i >= len(c.lines) {
		return LineItem{}, ErrInvalidIndex
	}
	removed := c.lines[i]
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return removed, nil
}

// freeze snapshots the selections so later edits to the caller's state
// cannot rewrite a stored line's identity or price.
func freeze(sel selection.Selections) selection.Selections {
	frozen := make(selection.Selections, len(sel))
	for group, opts := range sel {
		frozen[group] = append([]catalog.Option(nil), opts...)
	}
	return frozen
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal is the sum of line totals. Tax is a presentation concern
// applied at checkout, never here.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}
