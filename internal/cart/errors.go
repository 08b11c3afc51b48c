package cart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidIndex signals a caller bug: a line index outside the cart.
	// It belongs in logs, not in user-facing copy.
	ErrInvalidIndex = errors.New("cart line index out of range")

	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// IncompleteSelectionError is user-correctable: the caller renders the
// missing group names so the customer can finish configuring the product.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("selection incomplete: %s", strings.Join(e.Missing, ", "))
}
