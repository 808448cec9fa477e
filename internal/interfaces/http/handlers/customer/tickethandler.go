package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkinUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type TicketHandler struct {
	myTicketsUC usecases.ListOwnedTicketsExecutor
	myResalesUC usecases.ListOwnedTicketsExecutor
	relistUC    usecases.RelistTicketExecutor
	unlistUC    usecases.UnlistTicketExecutor
	issueCodeUC checkinUsecases.IssueTicketCodeExecutor
	logger      logger.Interface
}

func NewTicketHandler(
	myTicketsUC usecases.ListOwnedTicketsExecutor,
	myResalesUC usecases.ListOwnedTicketsExecutor,
	relistUC usecases.RelistTicketExecutor,
	unlistUC usecases.UnlistTicketExecutor,
	issueCodeUC checkinUsecases.IssueTicketCodeExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		myTicketsUC: myTicketsUC,
		myResalesUC: myResalesUC,
		relistUC:    relistUC,
		unlistUC:    unlistUC,
		issueCodeUC: issueCodeUC,
		logger:      logger,
	}
}

// ownerAndTicket reads the authenticated customer and the :id ticket.
func ownerAndTicket(c *gin.Context) (string, string, error) {
	customerID, err := utils.GetCustomerID(c)
	if err != nil {
		return "", "", err
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		return "", "", err
	}
	return customerID, ticketID, nil
}

// ListMyTickets handles GET /me/tickets
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	h.listOwned(c, h.myTicketsUC)
}

// ListMyResales handles GET /me/resales
func (h *TicketHandler) ListMyResales(c *gin.Context) {
	h.listOwned(c, h.myResalesUC)
}

func (h *TicketHandler) listOwned(c *gin.Context, uc usecases.ListOwnedTicketsExecutor) {
	customerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.ListOwnedTicketsQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Relist handles POST /tickets/:id/resale
func (h *TicketHandler) Relist(c *gin.Context) {
	ownerID, ticketID, err := ownerAndTicket(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RelistRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.relistUC.Execute(c.Request.Context(), usecases.RelistTicketCommand{
		OwnerID:  ownerID,
		TicketID: ticketID,
		Price:    req.ParsedPrice(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket listed for resale", result)
}

// Unlist handles DELETE /tickets/:id/resale
func (h *TicketHandler) Unlist(c *gin.Context) {
	ownerID, ticketID, err := ownerAndTicket(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unlistUC.Execute(c.Request.Context(), usecases.UnlistTicketCommand{
		OwnerID:  ownerID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resale listing withdrawn", result)
}

// IssueCode handles POST /tickets/:id/code
func (h *TicketHandler) IssueCode(c *gin.Context) {
	customerID, ticketID, err := ownerAndTicket(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.issueCodeUC.Execute(c.Request.Context(), checkinUsecases.IssueTicketCodeCommand{
		CustomerID: customerID,
		TicketID:   ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
