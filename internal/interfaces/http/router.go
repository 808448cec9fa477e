package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/middleware"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/routes"
)

// setupRoutes installs global middleware and registers every route group.
func (c *Container) setupRoutes() {
	c.engine.Use(
		middleware.RequestID(),
		middleware.Logger(c.log),
		middleware.Recovery(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
		middleware.Metrics(),
	)

	c.engine.GET("/health", c.hdlrs.healthHandler.Health)
	if c.cfg.Metrics.Enabled {
		c.engine.GET(c.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.loginRateLimiter,
	})

	routes.SetupOrganizerRoutes(c.engine, &routes.OrganizerRouteConfig{
		EventHandler:        c.hdlrs.eventHandler,
		StaffHandler:        c.hdlrs.staffHandler,
		InventoryHandler:    c.hdlrs.inventoryHandler,
		AuthMiddleware:      c.authMiddleware,
		OrganizerMiddleware: c.organizerMiddleware,
	})

	routes.SetupMarketRoutes(c.engine, &routes.MarketRouteConfig{
		MarketHandler: c.hdlrs.marketHandler,
	})

	routes.SetupCustomerRoutes(c.engine, &routes.CustomerRouteConfig{
		OrderHandler:   c.hdlrs.orderHandler,
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCheckInRoutes(c.engine, &routes.CheckInRouteConfig{
		CheckInHandler: c.hdlrs.checkInHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
