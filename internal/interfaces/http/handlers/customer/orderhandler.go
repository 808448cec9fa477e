// Package customer serves the buyer side of the marketplace: checkout,
// payment, owned tickets, resale listings and check-in codes.
package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/order/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type OrderHandler struct {
	checkoutUC     usecases.CheckoutExecutor
	payOrderUC     usecases.PayOrderExecutor
	getOrderUC     usecases.GetOrderExecutor
	listMyOrdersUC usecases.ListMyOrdersExecutor
	logger         logger.Interface
}

func NewOrderHandler(
	checkoutUC usecases.CheckoutExecutor,
	payOrderUC usecases.PayOrderExecutor,
	getOrderUC usecases.GetOrderExecutor,
	listMyOrdersUC usecases.ListMyOrdersExecutor,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		checkoutUC:     checkoutUC,
		payOrderUC:     payOrderUC,
		getOrderUC:     getOrderUC,
		listMyOrdersUC: listMyOrdersUC,
		logger:         logger,
	}
}

// Checkout handles POST /tickets/:id/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	buyerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutCommand{
		BuyerID:  buyerID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Seat reserved, complete the settlement to pay")
}

// PayOrder handles POST /orders/:id/pay
func (h *OrderHandler) PayOrder(c *gin.Context) {
	buyerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PayOrderRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for pay order", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.payOrderUC.Execute(c.Request.Context(), usecases.PayOrderCommand{
		BuyerID: buyerID,
		OrderID: orderID,
		TxHash:  req.TxHash,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	customerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	orderID, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{
		CustomerID: customerID,
		OrderID:    orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyOrders handles GET /me/orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customerID, err := utils.GetCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMyOrdersUC.Execute(c.Request.Context(), usecases.ListMyOrdersQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
