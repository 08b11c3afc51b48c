package checkout

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thinknumbers/order-scanner-delight/internal/cart"
)

const StatusPlaced = "PLACED"

type Order struct {
	ID          string            `json:"id"`
	TableNumber string            `json:"table_number,omitempty"`
	Items       []cart.LineRecord `json:"items"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Tax         decimal.Decimal   `json:"tax"`
	Total       decimal.Decimal   `json:"total"`
	Status      string            `json:"status"`
	CardLast4   string            `json:"card_last4,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Card is the payment form input. The payment flow is simulated, so
// validation is format-only: 16 digits, MM/YY expiry, 3-digit CVV.
type Card struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

func (c Card) Validate() error {
	number := strings.ReplaceAll(c.Number, " ", "")
	if len(number) != 16 || !digitsOnly.MatchString(number) {
		return errors.New("card number must be 16 digits")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("cardholder name is required")
	}
	if !expiryPattern.MatchString(c.Expiry) {
		return errors.New("expiry must be MM/YY")
	}
	if !cvvPattern.MatchString(c.CVV) {
		return errors.New("cvv must be 3 digits")
	}
	return nil
}

func (c Card) Last4() string {
	number := strings.ReplaceAll(c.Number, " ", "")
	if len(number) < 4 {
		return ""
	}
	return number[len(number)-4:]
}
