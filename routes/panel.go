package routes

import (
	panel_handlers "sportevent.link/handlers/panel"
	"sportevent.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerPanelRoutes(app *fiber.App) {
	eventHandler := panel_handlers.NewEventHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	panelGroup.Get("/events", eventHandler.ListEvents)
	panelGroup.Post("/events/:id/response", eventHandler.SubmitResponse)
}
