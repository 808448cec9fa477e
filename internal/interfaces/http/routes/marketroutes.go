package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/market"
)

type MarketRouteConfig struct {
	MarketHandler *market.Handler
}

// SetupMarketRoutes registers the public marketplace browse routes.
func SetupMarketRoutes(engine *gin.Engine, config *MarketRouteConfig) {
	events := engine.Group("/market/events")
	{
		events.GET("", config.MarketHandler.ListEvents)
		events.GET("/:id/tickets", config.MarketHandler.ListSeats)
		events.GET("/:id", config.MarketHandler.GetEvent)
	}
}
