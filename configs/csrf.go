package configs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

// SetupCSRF form gönderimlerini koruyan CSRF middleware'ini oluşturur.
// Üretilen token "csrf" locals anahtarıyla view'lara aktarılır.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "sportevent_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		ContextKey:     "csrf",
	})
}
