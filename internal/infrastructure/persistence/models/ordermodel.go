package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderModel struct {
	ID           string          `gorm:"primaryKey;size:36"`
	TicketID     string          `gorm:"size:36;not null;index"`
	EventID      string          `gorm:"size:36;not null;index"`
	BuyerID      string          `gorm:"size:36;not null;index"`
	SellerID     *string         `gorm:"size:36;index"`
	Price        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Fee          decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Status       string          `gorm:"size:20;not null;index:idx_order_status_created,priority:1"`
	TxHash       *string         `gorm:"size:128;uniqueIndex:idx_orders_tx_hash"`
	Settlement   datatypes.JSON
	PaidAt       *int64
	TransferedAt *int64
	AbandonedAt  *int64
	Version      int   `gorm:"not null;default:1"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null;index:idx_order_status_created,priority:2"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}
