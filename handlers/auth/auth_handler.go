package handlers

import (
	"errors"

	"sportevent.link/configs/configslog"
	"sportevent.link/pkg/flashmessages"
	"sportevent.link/pkg/renderer"
	"sportevent.link/services"
	"sportevent.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş/çıkış işlemleri için handler.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title": "Anmelden",
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/auth_layout", renderData)
}

// Login formdan gelen e-posta ile aktif oyuncuyu arar ve oturumu başlatır.
// Parola alanı alınır ama doğrulanmaz (bkz. AuthService.SignIn).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	passphrase := c.FormValue("password")

	player, err := h.authService.SignIn(c.UserContext(), email, passphrase)
	if err != nil {
		if !errors.Is(err, services.ErrAuthenticationFailed) && !errors.Is(err, services.ErrAuthInvalidInput) {
			configslog.Log.Error("Login Error", zap.String("email", email), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login fehlgeschlagen.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: oturum başlatılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login fehlgeschlagen.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, player.ID, player.Nickname, player.IsAdmin); err != nil {
		configslog.Log.Error("Login: oturum yazılamadı", zap.Uint("playerID", player.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login fehlgeschlagen.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/panel/events", fiber.StatusFound)
}

// Logout oturumu ve kalıcı kimliği temizler, her zaman giriş sayfasına döner.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.DestroySession(c); err != nil {
		configslog.Log.Warn("Logout: oturum temizlenemedi", zap.Error(err))
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}
