package migration

import (
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models whose schema the SQL scripts create.
// Tests and local development migrate them with gorm directly.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.EventModel{},
		&models.TicketTypeModel{},
		&models.EventStaffModel{},
		&models.TicketModel{},
		&models.OrderModel{},
	}
}
