package db

import (
	"gorm.io/gorm"
)

// StatusIn restricts a query to rows whose status column is one of statuses.
// With no statuses the query is left unfiltered.
//
//	tx.Model(&models.TicketModel{}).Scopes(db.StatusIn("NEW", "RESALE")).Count(&n)
func StatusIn[S ~string](statuses ...S) func(db *gorm.DB) *gorm.DB {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where("status IN ?", values)
	}
}

// ByEvent restricts a query to rows of one event.
func ByEvent(eventID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("event_id = ?", eventID)
	}
}
