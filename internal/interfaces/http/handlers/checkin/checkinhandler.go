// Package checkin serves gate staff admitting ticket holders.
package checkin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type CheckInRequest struct {
	Code string `json:"code" validate:"required,max=2048"`
	// TxRef optionally links the admission to an on-chain record.
	TxRef string `json:"tx_ref" validate:"max=128"`
}

type VerifyRequest struct {
	Code string `json:"code" validate:"required,max=2048"`
}

type Handler struct {
	checkInUC usecases.CheckInExecutor
	verifyUC  usecases.VerifyCheckInExecutor
	logger    logger.Interface
}

func NewHandler(checkInUC usecases.CheckInExecutor, verifyUC usecases.VerifyCheckInExecutor, logger logger.Interface) *Handler {
	return &Handler{
		checkInUC: checkInUC,
		verifyUC:  verifyUC,
		logger:    logger,
	}
}

// CheckIn handles POST /checkin
func (h *Handler) CheckIn(c *gin.Context) {
	staffID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckInRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), usecases.CheckInCommand{
		StaffID: staffID,
		Code:    req.Code,
		TxRef:   req.TxRef,
	})
	if err != nil {
		h.logger.Warnw("check-in rejected", "staff_id", staffID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket checked in", result)
}

// Verify handles POST /checkin/verify. It runs every admission check without
// consuming the ticket.
func (h *Handler) Verify(c *gin.Context) {
	staffID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), usecases.VerifyCheckInQuery{
		StaffID: staffID,
		Code:    req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
