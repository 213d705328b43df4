package routes

import (
	dashboard_handlers "sportevent.link/handlers/dashboard"
	"sportevent.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerDashboardRoutes(app *fiber.App) {
	playerHandler := dashboard_handlers.NewPlayerHandler()
	eventHandler := dashboard_handlers.NewEventHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware)
	dashboardGroup.Use(middlewares.AdminMiddleware)

	dashboardGroup.Get("/players", playerHandler.ListPlayers)
	dashboardGroup.Post("/players/:id/toggle", playerHandler.TogglePlayerActive)

	dashboardGroup.Get("/events/create", eventHandler.ShowCreateEvent)
	dashboardGroup.Post("/events/create", eventHandler.CreateEvent)
}
