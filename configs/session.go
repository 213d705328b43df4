package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession oturum deposunu oluşturur.
// Oturum çerezi oyuncunun kalıcı kimliğini (player_id) taşır; yeniden
// girişlerde AuthMiddleware bu kimlikle oyuncuyu tekrar çözer.
func SetupSession() *session.Store {
	return session.New(session.Config{
		CookieName:     "sportevent_session",
		Expiration:     30 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   os.Getenv("APP_ENV") == "production",
	})
}
