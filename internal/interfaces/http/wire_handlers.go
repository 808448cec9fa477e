package http

import (
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers"
	checkinHandlers "github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/checkin"
	customerHandlers "github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/customer"
	marketHandlers "github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/market"
	organizerHandlers "github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/organizer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler   *handlers.AuthHandler
	healthHandler *handlers.HealthHandler

	// Organizer
	eventHandler     *organizerHandlers.EventHandler
	staffHandler     *organizerHandlers.StaffHandler
	inventoryHandler *organizerHandlers.InventoryHandler

	// Public marketplace
	marketHandler *marketHandlers.Handler

	// Customer
	orderHandler  *customerHandlers.OrderHandler
	ticketHandler *customerHandlers.TicketHandler

	// Staff
	checkInHandler *checkinHandlers.Handler
}

func newHandlers(ucs *allUseCases, checks map[string]handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler:   handlers.NewAuthHandler(ucs.login, log),
		healthHandler: handlers.NewHealthHandler(checks),

		eventHandler: organizerHandlers.NewEventHandler(
			ucs.createEvent, ucs.updateEvent, ucs.getEvent, ucs.listEvents,
			ucs.previewEvent, ucs.publishEvent, ucs.disableEvent, ucs.deleteEvent,
			log,
		),
		staffHandler: organizerHandlers.NewStaffHandler(ucs.addStaff, ucs.listStaff, ucs.removeStaff, log),
		inventoryHandler: organizerHandlers.NewInventoryHandler(
			ucs.addTicketType, ucs.updateTicketType, ucs.removeTicketType, ucs.listTicketTypes,
			ucs.provisionSeats, ucs.editSeat,
			log,
		),

		marketHandler: marketHandlers.NewHandler(ucs.listMarketEvents, ucs.getMarketEvent, ucs.listEventSeats, log),

		orderHandler: customerHandlers.NewOrderHandler(ucs.checkout, ucs.payOrder, ucs.getOrder, ucs.listMyOrders, log),
		ticketHandler: customerHandlers.NewTicketHandler(
			ucs.listMyTickets, ucs.listMyResales, ucs.relist, ucs.unlist, ucs.issueCode, log,
		),

		checkInHandler: checkinHandlers.NewHandler(ucs.checkIn, ucs.verify, log),
	}
}
