package organizer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type StaffHandler struct {
	addStaffUC    usecases.AddStaffExecutor
	listStaffUC   usecases.ListStaffExecutor
	removeStaffUC usecases.RemoveStaffExecutor
	logger        logger.Interface
}

func NewStaffHandler(
	addStaffUC usecases.AddStaffExecutor,
	listStaffUC usecases.ListStaffExecutor,
	removeStaffUC usecases.RemoveStaffExecutor,
	logger logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		addStaffUC:    addStaffUC,
		listStaffUC:   listStaffUC,
		removeStaffUC: removeStaffUC,
		logger:        logger,
	}
}

// AddStaff handles POST /organizer/events/:id/staff
func (h *StaffHandler) AddStaff(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddStaffRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addStaffUC.Execute(c.Request.Context(), usecases.AddStaffCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
		Email:       req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff added successfully")
}

// ListStaff handles GET /organizer/events/:id/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listStaffUC.Execute(c.Request.Context(), usecases.ListStaffQuery{
		OrganizerID: organizerID,
		EventID:     eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RemoveStaff handles DELETE /organizer/events/:id/staff/:staff_id
func (h *StaffHandler) RemoveStaff(c *gin.Context) {
	organizerID, eventID, err := organizerAndEvent(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	staffID, err := utils.ParseIDParam(c, "staff_id", "staff")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeStaffUC.Execute(c.Request.Context(), usecases.RemoveStaffCommand{
		OrganizerID: organizerID,
		EventID:     eventID,
		StaffID:     staffID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
