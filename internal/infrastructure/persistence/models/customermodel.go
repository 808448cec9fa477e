package models

import "github.com/shopspring/decimal"

type CustomerModel struct {
	ID                    string          `gorm:"primaryKey;size:36"`
	Email                 string          `gorm:"size:255;index"`
	WalletAddress         string          `gorm:"size:128;not null;uniqueIndex"`
	Status                string          `gorm:"size:20;not null"`
	IsOrganizer           bool            `gorm:"not null;default:false"`
	DefaultResaleFeeRate  decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	DefaultMaxResaleTimes int             `gorm:"not null;default:0"`
	CreatedAt             int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt             int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
