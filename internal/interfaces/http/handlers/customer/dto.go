package customer

import "github.com/shopspring/decimal"

type PayOrderRequest struct {
	// TxHash is the signature of the buyer's settlement transaction.
	TxHash string `json:"tx_hash" validate:"required,min=32,max=128,alphanum"`
}

type RelistRequest struct {
	Price string `json:"price" validate:"required,decimal_gte=1"`
}

func (r *RelistRequest) ParsedPrice() decimal.Decimal {
	return decimal.RequireFromString(r.Price)
}
