package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is the partially authorized purchase the buyer completes and
// submits to the ledger.
type Settlement struct {
	Message    string    `json:"message"`
	Signature  string    `json:"signature"`
	Nonce      string    `json:"nonce"`
	ValidUntil time.Time `json:"valid_until"`
}

func (s Settlement) IsExpired(now time.Time) bool {
	return !now.Before(s.ValidUntil)
}

// Fee is the marketplace cut of a resale at price.
func Fee(price, rate decimal.Decimal) decimal.Decimal {
	return price.Mul(rate)
}
