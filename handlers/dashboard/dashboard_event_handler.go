package handlers

import (
	"errors"

	"sportevent.link/configs/configslog"
	"sportevent.link/pkg/flashmessages"
	"sportevent.link/pkg/renderer"
	"sportevent.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler etkinlik oluşturma için handler (yönetim alanı).
type EventHandler struct {
	adminService services.IAdminService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler() *EventHandler {
	return &EventHandler{adminService: services.NewAdminService()}
}

// ShowCreateEvent etkinlik oluşturma formunu gösterir.
// Önceki başarısız gönderimin verisi flash üzerinden forma geri doldurulur.
func (h *EventHandler) ShowCreateEvent(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	formData := flashmessages.GetFlashFormData(c)
	for _, field := range []string{"title", "location", "event_date", "time_from", "time_to"} {
		if _, ok := formData[field]; !ok {
			formData[field] = ""
		}
	}

	renderData := fiber.Map{
		"Title":    "Event erstellen",
		"FormData": formData,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/events/create", "layouts/dashboard_layout", renderData)
}

// CreateEvent formdan gelen beş zorunlu alanla yeni bir etkinlik oluşturur.
// Başarıda form temizlenmiş olarak oyuncu listesine dönülür; hatada genel bir
// mesaj gösterilir ve girilen değerler düzeltme için korunur.
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	var form services.EventForm
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Dashboard - CreateEvent: form verisi parse edilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Fehler beim Erstellen des Events.")
		return c.Redirect("/dashboard/events/create", fiber.StatusSeeOther)
	}

	_, err := h.adminService.CreateEvent(c.UserContext(), adminUserID, form)
	if err != nil {
		errMsg := "Fehler beim Erstellen des Events."
		if errors.Is(err, services.ErrAdminEventFieldMissing) {
			errMsg = "Bitte alle Felder ausfüllen."
		} else if errors.Is(err, services.ErrAdminEventDateInvalid) {
			errMsg = "Ungültiges Datum."
		} else {
			configslog.Log.Error("Dashboard - CreateEvent Error", zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/dashboard/events/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Event erfolgreich erstellt!")
	return c.Redirect("/dashboard/players", fiber.StatusFound)
}
