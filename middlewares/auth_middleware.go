package middlewares

import (
	"sportevent.link/configs/configslog"
	"sportevent.link/services"
	"sportevent.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware oturumdaki kalıcı kimliği her istekte yeniden doğrular.
// Oyuncu silinmiş veya pasifleştirilmişse oturum temizlenir ve giriş sayfasına
// yönlendirilir; tek yeniden doğrulama yolu budur (token/imza yoktur).
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	authService := services.NewAuthService()
	player, err := authService.CheckAuth(c.UserContext(), userID)
	if err != nil {
		configslog.SLog.Infow("Oturum doğrulanamadı, temizleniyor", "userID", userID)
		if destroyErr := utils.DestroySession(c); destroyErr != nil {
			configslog.Log.Warn("Oturum temizlenemedi", zap.Error(destroyErr))
		}
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	// Doğrulanan oyuncu isteğin geri kalanında locals üzerinden kullanılır.
	c.Locals("player", player)
	c.Locals("userID", player.ID)
	c.Locals("userName", player.Nickname)
	c.Locals("isAdmin", player.IsAdmin)
	return c.Next()
}

// AdminMiddleware yalnızca yönetici oyuncuları geçirir. AuthMiddleware'den
// sonra çalışmalıdır.
func AdminMiddleware(c *fiber.Ctx) error {
	isAdmin, ok := c.Locals("isAdmin").(bool)
	if !ok || !isAdmin {
		return c.Redirect("/panel/events", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış oyuncuları giriş/kayıt sayfalarından uzak tutar.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/events", fiber.StatusSeeOther)
	}
	return c.Next()
}
