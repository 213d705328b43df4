package renderer

import (
	"net/http"

	"sportevent.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View tarafında kullanılan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages okunan flash mesajlarını render verisine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render verilen view'u layout ile birlikte çizer.
// Oturum bilgileri (UserID, UserName, IsAdmin) locals'tan otomatik eklenir.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		data["UserID"] = userID
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok {
		data["IsAdmin"] = isAdmin
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if layout == "" {
		return c.Status(code).Render(view, data)
	}
	return c.Status(code).Render(view, data, layout)
}
