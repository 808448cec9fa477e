// Package organizer serves the organizer back office: events, gate staff,
// ticket types and seat inventory.
package organizer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type EventHandler struct {
	createEventUC  usecases.CreateEventExecutor
	updateEventUC  usecases.UpdateEventExecutor
	getEventUC     usecases.GetEventExecutor
	listEventsUC   usecases.ListEventsExecutor
	previewEventUC usecases.PreviewEventExecutor
	publishEventUC usecases.PublishEventExecutor
	disableEventUC usecases.DisableEventExecutor
	deleteEventUC  usecases.DeleteEventExecutor
	logger         logger.Interface
}

func NewEventHandler(
	createEventUC usecases.CreateEventExecutor,
	updateEventUC usecases.UpdateEventExecutor,
	getEventUC usecases.GetEventExecutor,
	listEventsUC usecases.ListEventsExecutor,
	previewEventUC usecases.PreviewEventExecutor,
	publishEventUC usecases.PublishEventExecutor,
	disableEventUC usecases.DisableEventExecutor,
	deleteEventUC usecases.DeleteEventExecutor,
	logger logger.Interface,
) *EventHandler {
	return &EventHandler{
		createEventUC:  createEventUC,
		updateEventUC:  updateEventUC,
		getEventUC:     getEventUC,
		listEventsUC:   listEventsUC,
		previewEventUC: previewEventUC,
		publishEventUC: publishEventUC,
		disableEventUC: disableEventUC,
		deleteEventUC:  deleteEventUC,
		logger:         logger,
	}
}

// organizerAndEvent reads the authenticated organizer and the :id event
// parameter.
func organizerAndEvent(c *gin.Context) (string, string, error) {
	organizerID, err := utils.GetCustomerID(c)
	if err != nil {
		return "", "", err
	}
	eventID, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		return "", "", err
	}
	return organizerID, eventID, nil
}

// CreateEvent handles POST /organizer/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	organizerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create event", "error", err, "organizer_id", organizerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createEventUC.Execute(c.Request.Context(), usecases.CreateEventCommand{
		OrganizerID: organizerID,
		EventFields: req.ToFields(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Event created successfully")
}

// ListEvents handles GET /organizer/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	organizerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEventsUC.Execute(c.Request.Context(), usecases.ListEventsQuery{OrganizerID: organizerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetEvent handles GET /organizer/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEventUC.Execute(c.Request.Context(), usecases.GetEventQuery{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateEvent handles PUT /organizer/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update event", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateEventUC.Execute(c.Request.Context(), usecases.UpdateEventCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
		EventFields: req.ToFields(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event updated successfully", result)
}

// DeleteEvent handles DELETE /organizer/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEventUC.Execute(c.Request.Context(), usecases.DeleteEventCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// PreviewEvent handles POST /organizer/events/:id/preview
func (h *EventHandler) PreviewEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.previewEventUC.Execute(c.Request.Context(), usecases.PreviewEventCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event moved to preview", result)
}

// PublishEvent handles POST /organizer/events/:id/publish
func (h *EventHandler) PublishEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.publishEventUC.Execute(c.Request.Context(), usecases.PublishEventCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event published", result)
}

// DisableEvent handles POST /organizer/events/:id/disable
func (h *EventHandler) DisableEvent(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.disableEventUC.Execute(c.Request.Context(), usecases.DisableEventCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event disabled", result)
}
