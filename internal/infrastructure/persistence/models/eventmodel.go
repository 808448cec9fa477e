package models

import "github.com/shopspring/decimal"

type EventModel struct {
	ID                string          `gorm:"primaryKey;size:36"`
	OrganizerID       string          `gorm:"size:36;not null;index"`
	Name              string          `gorm:"size:200;not null"`
	Address           string          `gorm:"size:500"`
	Description       string          `gorm:"type:text"`
	Avatar            string          `gorm:"size:500"`
	StartTime         int64           `gorm:"not null"`
	EndTime           int64           `gorm:"not null"`
	TicketReleaseTime int64           `gorm:"not null"`
	StopSaleBefore    int             `gorm:"not null;default:0"`
	ResaleFeeRate     decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	MaxResaleTimes    int             `gorm:"not null;default:0"`
	Status            string          `gorm:"size:20;not null;index"`
	ArtifactURI       string          `gorm:"size:500"`
	Version           int             `gorm:"not null;default:1"`
	CreatedAt         int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (EventModel) TableName() string {
	return "events"
}

type TicketTypeModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	EventID   string          `gorm:"size:36;not null;index"`
	TierName  string          `gorm:"size:100;not null"`
	TierPrice decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Color     string          `gorm:"size:16"`
	CreatedAt int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

type EventStaffModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	EventID    string `gorm:"size:36;not null;uniqueIndex:idx_event_staff,priority:1"`
	StaffID    string `gorm:"size:36;not null;uniqueIndex:idx_event_staff,priority:2"`
	OperatorID string `gorm:"size:36;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EventStaffModel) TableName() string {
	return "event_staff"
}
