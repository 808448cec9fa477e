package models

import "github.com/shopspring/decimal"

// TicketModel is one seat. (ticket_type_id, seat_row, seat_column) is unique
// so concurrent provisioning of the same coordinate inserts once.
type TicketModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	EventID       string          `gorm:"size:36;not null;index"`
	TicketTypeID  string          `gorm:"size:36;not null;uniqueIndex:idx_ticket_seat,priority:1"`
	SeatRow       int             `gorm:"not null;uniqueIndex:idx_ticket_seat,priority:2"`
	SeatColumn    int             `gorm:"not null;uniqueIndex:idx_ticket_seat,priority:3"`
	Name          string          `gorm:"size:100;not null"`
	InitialPrice  decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	PreviousPrice decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	SaleStartTime int64           `gorm:"not null"`
	SaleEndTime   int64           `gorm:"not null"`
	ResaleTimes   int             `gorm:"not null;default:0"`
	OwnerID       *string         `gorm:"size:36;index"`
	Status        string          `gorm:"size:20;not null;index"`
	LastOrderID   *string         `gorm:"size:36"`
	StaffID       *string         `gorm:"size:36"`
	CheckInAt     *int64
	CheckInTxRef  string `gorm:"size:128"`
	Version       int    `gorm:"not null;default:1"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
