package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers/organizer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/middleware"
)

type OrganizerRouteConfig struct {
	EventHandler        *organizer.EventHandler
	StaffHandler        *organizer.StaffHandler
	InventoryHandler    *organizer.InventoryHandler
	AuthMiddleware      *middleware.AuthMiddleware
	OrganizerMiddleware *middleware.OrganizerMiddleware
}

// SetupOrganizerRoutes registers event authoring, staff and inventory routes.
// Every route requires an authenticated, enabled organizer.
func SetupOrganizerRoutes(engine *gin.Engine, config *OrganizerRouteConfig) {
	org := engine.Group("/organizer")
	org.Use(config.AuthMiddleware.RequireAuth(), config.OrganizerMiddleware.RequireOrganizer())

	events := org.Group("/events")
	{
		events.POST("", config.EventHandler.CreateEvent)
		events.GET("", config.EventHandler.ListEvents)

		// Lifecycle actions
		events.POST("/:id/preview", config.EventHandler.PreviewEvent)
		events.POST("/:id/publish", config.EventHandler.PublishEvent)
		events.POST("/:id/disable", config.EventHandler.DisableEvent)

		events.POST("/:id/staff", config.StaffHandler.AddStaff)
		events.GET("/:id/staff", config.StaffHandler.ListStaff)
		events.DELETE("/:id/staff/:staff_id", config.StaffHandler.RemoveStaff)

		events.POST("/:id/ticket-types", config.InventoryHandler.AddTicketType)
		events.GET("/:id/ticket-types", config.InventoryHandler.ListTicketTypes)
		events.PUT("/:id/ticket-types/:type_id", config.InventoryHandler.UpdateTicketType)
		events.DELETE("/:id/ticket-types/:type_id", config.InventoryHandler.RemoveTicketType)
		events.POST("/:id/ticket-types/:type_id/seats", config.InventoryHandler.ProvisionSeats)
		events.PUT("/:id/tickets/:ticket_id", config.InventoryHandler.EditSeat)

		events.GET("/:id", config.EventHandler.GetEvent)
		events.PUT("/:id", config.EventHandler.UpdateEvent)
		events.DELETE("/:id", config.EventHandler.DeleteEvent)
	}
}
