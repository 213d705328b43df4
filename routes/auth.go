package routes

import (
	auth_handlers "sportevent.link/handlers/auth"
	"sportevent.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	// Grup seviyesinde Use, /auth önekindeki tüm rotalarla eşleşir;
	// guest/auth ayrımı bu yüzden rota bazında yapılır.
	authGroup.Get("/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	authGroup.Post("/login", middlewares.GuestMiddleware, authHandler.Login)

	authGroup.Get("/logout", middlewares.AuthMiddleware, authHandler.Logout)
	authGroup.Post("/logout", middlewares.AuthMiddleware, authHandler.Logout)
}
