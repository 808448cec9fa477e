package http

import (
	checkinUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/usecases"
	eventUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	identityUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/identity/usecases"
	inventoryUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/usecases"
	marketUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/usecases"
	orderUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/order/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Identity
	login *identityUsecases.LoginUseCase

	// Event lifecycle
	createEvent  *eventUsecases.CreateEventUseCase
	updateEvent  *eventUsecases.UpdateEventUseCase
	getEvent     *eventUsecases.GetEventUseCase
	listEvents   *eventUsecases.ListEventsUseCase
	previewEvent *eventUsecases.PreviewEventUseCase
	publishEvent *eventUsecases.PublishEventUseCase
	disableEvent *eventUsecases.DisableEventUseCase
	deleteEvent  *eventUsecases.DeleteEventUseCase
	addStaff     *eventUsecases.AddStaffUseCase
	listStaff    *eventUsecases.ListStaffUseCase
	removeStaff  *eventUsecases.RemoveStaffUseCase

	// Seat inventory
	addTicketType    *inventoryUsecases.AddTicketTypeUseCase
	updateTicketType *inventoryUsecases.UpdateTicketTypeUseCase
	removeTicketType *inventoryUsecases.RemoveTicketTypeUseCase
	listTicketTypes  *inventoryUsecases.ListTicketTypesUseCase
	provisionSeats   *inventoryUsecases.ProvisionSeatsUseCase
	editSeat         *inventoryUsecases.EditSeatUseCase

	// Marketplace
	listMarketEvents *marketUsecases.ListMarketEventsUseCase
	getMarketEvent   *marketUsecases.GetMarketEventUseCase
	listEventSeats   *marketUsecases.ListEventSeatsUseCase
	listMyTickets    *marketUsecases.ListOwnedTicketsUseCase
	listMyResales    *marketUsecases.ListOwnedTicketsUseCase
	relist           *marketUsecases.RelistTicketUseCase
	unlist           *marketUsecases.UnlistTicketUseCase

	// Orders
	checkout     *orderUsecases.CheckoutUseCase
	payOrder     *orderUsecases.PayOrderUseCase
	getOrder     *orderUsecases.GetOrderUseCase
	listMyOrders *orderUsecases.ListMyOrdersUseCase
	reclaim      *orderUsecases.ReclaimOrdersUseCase

	// Check-in
	issueCode *checkinUsecases.IssueTicketCodeUseCase
	checkIn   *checkinUsecases.CheckInUseCase
	verify    *checkinUsecases.VerifyCheckInUseCase
}

func newUseCases(cfg *config.Config, r *repositories, s *services, log logger.Interface) *allUseCases {
	return &allUseCases{
		login: identityUsecases.NewLoginUseCase(r.customerRepo, s.verifier, s.jwtSvc, cfg.Identity.OrganizerWallets, log),

		createEvent:  eventUsecases.NewCreateEventUseCase(r.eventRepo, r.customerRepo, log),
		updateEvent:  eventUsecases.NewUpdateEventUseCase(r.eventRepo, r.ticketRepo, r.txManager, log),
		getEvent:     eventUsecases.NewGetEventUseCase(r.eventRepo, log),
		listEvents:   eventUsecases.NewListEventsUseCase(r.eventRepo, log),
		previewEvent: eventUsecases.NewPreviewEventUseCase(r.eventRepo, s.pinning, log),
		publishEvent: eventUsecases.NewPublishEventUseCase(r.eventRepo, s.eventBus, log),
		disableEvent: eventUsecases.NewDisableEventUseCase(r.eventRepo, log),
		deleteEvent: eventUsecases.NewDeleteEventUseCase(
			r.eventRepo, r.ticketTypeRepo, r.staffRepo, r.ticketRepo, r.orderRepo, r.txManager, log,
		),
		addStaff:    eventUsecases.NewAddStaffUseCase(r.eventRepo, r.staffRepo, r.customerRepo, log),
		listStaff:   eventUsecases.NewListStaffUseCase(r.eventRepo, r.staffRepo, r.customerRepo, log),
		removeStaff: eventUsecases.NewRemoveStaffUseCase(r.eventRepo, r.staffRepo, log),

		addTicketType:    inventoryUsecases.NewAddTicketTypeUseCase(r.eventRepo, r.ticketTypeRepo, log),
		updateTicketType: inventoryUsecases.NewUpdateTicketTypeUseCase(r.eventRepo, r.ticketTypeRepo, log),
		removeTicketType: inventoryUsecases.NewRemoveTicketTypeUseCase(r.eventRepo, r.ticketTypeRepo, r.ticketRepo, r.txManager, log),
		listTicketTypes:  inventoryUsecases.NewListTicketTypesUseCase(r.eventRepo, r.ticketTypeRepo, r.ticketRepo, log),
		provisionSeats:   inventoryUsecases.NewProvisionSeatsUseCase(r.eventRepo, r.ticketTypeRepo, r.ticketRepo, s.eventBus, log),
		editSeat:         inventoryUsecases.NewEditSeatUseCase(r.eventRepo, r.ticketTypeRepo, r.ticketRepo, log),

		listMarketEvents: marketUsecases.NewListMarketEventsUseCase(r.eventRepo, r.ticketRepo, log),
		getMarketEvent:   marketUsecases.NewGetMarketEventUseCase(r.eventRepo, r.ticketRepo, log),
		listEventSeats:   marketUsecases.NewListEventSeatsUseCase(r.eventRepo, r.ticketRepo, log),
		listMyTickets:    marketUsecases.NewListMyTicketsUseCase(r.ticketRepo, log),
		listMyResales:    marketUsecases.NewListMyResalesUseCase(r.ticketRepo, log),
		relist:           marketUsecases.NewRelistTicketUseCase(r.eventRepo, r.ticketRepo, r.customerRepo, s.eventBus, log),
		unlist:           marketUsecases.NewUnlistTicketUseCase(r.ticketRepo, r.customerRepo, s.eventBus, log),

		checkout: orderUsecases.NewCheckoutUseCase(
			r.eventRepo, r.ticketRepo, r.orderRepo, r.customerRepo, s.ledger, r.txManager, s.eventBus, log,
		),
		payOrder: orderUsecases.NewPayOrderUseCase(
			r.eventRepo, r.ticketRepo, r.orderRepo, s.ledger, r.txManager, s.eventBus, log,
		),
		getOrder:     orderUsecases.NewGetOrderUseCase(r.orderRepo, log),
		listMyOrders: orderUsecases.NewListMyOrdersUseCase(r.orderRepo, log),
		reclaim: orderUsecases.NewReclaimOrdersUseCase(
			r.ticketRepo, r.orderRepo, r.txManager, s.eventBus, cfg.Order.ReclaimAfter(), log,
		),

		issueCode: checkinUsecases.NewIssueTicketCodeUseCase(r.ticketRepo, s.codeSvc, log),
		checkIn: checkinUsecases.NewCheckInUseCase(
			r.eventRepo, r.staffRepo, r.ticketRepo, r.customerRepo, s.codeSvc, s.eventBus, log,
		),
		verify: checkinUsecases.NewVerifyCheckInUseCase(
			r.eventRepo, r.staffRepo, r.ticketRepo, r.customerRepo, s.codeSvc, log,
		),
	}
}
