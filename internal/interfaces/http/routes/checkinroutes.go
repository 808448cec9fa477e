package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/checkin"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/middleware"
)

type CheckInRouteConfig struct {
	CheckInHandler *checkin.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCheckInRoutes registers staff check-in routes. Staff membership is
// checked per event by the use cases.
func SetupCheckInRoutes(engine *gin.Engine, config *CheckInRouteConfig) {
	checkin := engine.Group("/checkin")
	checkin.Use(config.AuthMiddleware.RequireAuth())
	{
		checkin.POST("/verify", config.CheckInHandler.Verify)
		checkin.POST("", config.CheckInHandler.CheckIn)
	}
}
