// Package market serves the public, unauthenticated marketplace catalogue.
package market

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type Handler struct {
	listEventsUC usecases.ListMarketEventsExecutor
	getEventUC   usecases.GetMarketEventExecutor
	listSeatsUC  usecases.ListEventSeatsExecutor
	logger       logger.Interface
}

func NewHandler(
	listEventsUC usecases.ListMarketEventsExecutor,
	getEventUC usecases.GetMarketEventExecutor,
	listSeatsUC usecases.ListEventSeatsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listEventsUC: listEventsUC,
		getEventUC:   getEventUC,
		listSeatsUC:  listSeatsUC,
		logger:       logger,
	}
}

// ListEvents handles GET /market/events
func (h *Handler) ListEvents(c *gin.Context) {
	result, err := h.listEventsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list market events", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetEvent handles GET /market/events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	eventID, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEventUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSeats handles GET /market/events/:id/tickets
func (h *Handler) ListSeats(c *gin.Context) {
	eventID, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSeatsUC.Execute(c.Request.Context(), eventID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
