package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	OrderHandler   *customer.OrderHandler
	TicketHandler  *customer.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCustomerRoutes registers purchase, resale and ownership routes for
// signed-in customers.
func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("/:id/checkout", config.OrderHandler.Checkout)
		tickets.POST("/:id/resale", config.TicketHandler.Relist)
		tickets.DELETE("/:id/resale", config.TicketHandler.Unlist)
		tickets.POST("/:id/code", config.TicketHandler.IssueCode)
	}

	orders := engine.Group("/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		orders.POST("/:id/pay", config.OrderHandler.PayOrder)
		orders.GET("/:id", config.OrderHandler.GetOrder)
	}

	me := engine.Group("/me")
	me.Use(config.AuthMiddleware.RequireAuth())
	{
		me.GET("/orders", config.OrderHandler.ListMyOrders)
		me.GET("/tickets", config.TicketHandler.ListMyTickets)
		me.GET("/resales", config.TicketHandler.ListMyResales)
	}
}
