package organizer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type InventoryHandler struct {
	addTicketTypeUC    usecases.AddTicketTypeExecutor
	updateTicketTypeUC usecases.UpdateTicketTypeExecutor
	removeTicketTypeUC usecases.RemoveTicketTypeExecutor
	listTicketTypesUC  usecases.ListTicketTypesExecutor
	provisionSeatsUC   usecases.ProvisionSeatsExecutor
	editSeatUC         usecases.EditSeatExecutor
	logger             logger.Interface
}

func NewInventoryHandler(
	addTicketTypeUC usecases.AddTicketTypeExecutor,
	updateTicketTypeUC usecases.UpdateTicketTypeExecutor,
	removeTicketTypeUC usecases.RemoveTicketTypeExecutor,
	listTicketTypesUC usecases.ListTicketTypesExecutor,
	provisionSeatsUC usecases.ProvisionSeatsExecutor,
	editSeatUC usecases.EditSeatExecutor,
	logger logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		addTicketTypeUC:    addTicketTypeUC,
		updateTicketTypeUC: updateTicketTypeUC,
		removeTicketTypeUC: removeTicketTypeUC,
		listTicketTypesUC:  listTicketTypesUC,
		provisionSeatsUC:   provisionSeatsUC,
		editSeatUC:         editSeatUC,
		logger:             logger,
	}
}

// AddTicketType handles POST /organizer/events/:id/ticket-types
func (h *InventoryHandler) AddTicketType(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketTypeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addTicketTypeUC.Execute(c.Request.Context(), usecases.AddTicketTypeCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
		TierName:    req.TierName,
		TierPrice:   req.Price(),
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket type created successfully")
}

// ListTicketTypes handles GET /organizer/events/:id/ticket-types
func (h *InventoryHandler) ListTicketTypes(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketTypesUC.Execute(c.Request.Context(), usecases.ListTicketTypesQuery{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicketType handles PUT /organizer/events/:id/ticket-types/:type_id
func (h *InventoryHandler) UpdateTicketType(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	typeID, err := utils.ParseIDParam(c, "type_id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketTypeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketTypeUC.Execute(c.Request.Context(), usecases.UpdateTicketTypeCommand{
		OrganizerID:  organizerID,
		EventID:      eventID,
		TicketTypeID: typeID,
		TierName:     req.TierName,
		TierPrice:    req.Price(),
		Color:        req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket type updated successfully", result)
}

// RemoveTicketType handles DELETE /organizer/events/:id/ticket-types/:type_id
func (h *InventoryHandler) RemoveTicketType(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	typeID, err := utils.ParseIDParam(c, "type_id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeTicketTypeUC.Execute(c.Request.Context(), usecases.RemoveTicketTypeCommand{
		OrganizerID:  organizerID,
		EventID:      eventID,
		TicketTypeID: typeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ProvisionSeats handles POST /organizer/events/:id/ticket-types/:type_id/seats
func (h *InventoryHandler) ProvisionSeats(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	typeID, err := utils.ParseIDParam(c, "type_id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ProvisionSeatsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid seat provisioning request", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.provisionSeatsUC.Execute(c.Request.Context(), usecases.ProvisionSeatsCommand{
		OrganizerID:  organizerID,
		EventID:      eventID,
		TicketTypeID: typeID,
		Seats:        req.ToSeatInputs(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Seats provisioned")
}

// EditSeat handles PUT /organizer/events/:id/tickets/:ticket_id
func (h *InventoryHandler) EditSeat(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditSeatRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editSeatUC.Execute(c.Request.Context(), usecases.EditSeatCommand{
		OrganizerID:  organizerID,
		EventID:      eventID,
		TicketID:     ticketID,
		Status:       req.Status,
		TicketTypeID: req.TicketTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Seat updated", result)
}
