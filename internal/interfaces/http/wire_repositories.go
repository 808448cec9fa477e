package http

import (
	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/repository"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	customerRepo   customer.Repository
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	staffRepo      event.StaffRepository
	ticketRepo     ticket.Repository
	orderRepo      order.Repository
	txManager      db.Transactor
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		customerRepo:   repository.NewCustomerRepository(gdb),
		eventRepo:      repository.NewEventRepository(gdb),
		ticketTypeRepo: repository.NewTicketTypeRepository(gdb),
		staffRepo:      repository.NewEventStaffRepository(gdb),
		ticketRepo:     repository.NewTicketRepository(gdb),
		orderRepo:      repository.NewOrderRepository(gdb),
		txManager:      db.NewTransactionManager(gdb),
	}
}
