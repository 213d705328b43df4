package handlers

import (
	"errors"
	"net/http"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/pkg/flashmessages"
	"sportevent.link/pkg/renderer"
	"sportevent.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler oyuncuların etkinlik listesi ve cevap işlemleri için handler.
type EventHandler struct {
	eventService services.IEventService
	rsvpService  services.IRSVPService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler() *EventHandler {
	return &EventHandler{
		eventService: services.NewEventService(),
		rsvpService:  services.NewRSVPService(),
	}
}

// ListEvents etkinlik listesini görüntüleyenin cevaplarıyla birlikte çizer.
// Her çağrı tam bir senkronizasyondur; cevap gönderiminden sonra buraya
// yönlendirilerek görünüm sunucu durumundan yeniden kurulur.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	renderData := fiber.Map{
		"Title": "Events",
	}
	renderer.SetFlashMessages(renderData, flashData)

	view, err := h.eventService.LoadAll(c.UserContext(), userID)
	if err != nil {
		// Yenileme iptal edildi; varsa oyuncunun son başarılı görünümü gösterilir.
		configslog.Log.Error("Panel - ListEvents Error", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Events konnten nicht geladen werden."
		view = h.eventService.CurrentView(userID)
	}
	if view == nil {
		view = &services.EventView{PlayerID: userID, MyResponses: map[uint]models.EventResponse{}}
	}

	// Katılımcı rozetleri: sayım bu istekte çizilen görünüm üzerinden yapılır.
	counts := make(map[uint]int, len(view.Events))
	for _, event := range view.Events {
		counts[event.ID] = view.ResponseCountFor(event.ID)
	}

	renderData["Events"] = view.Events
	renderData["MyResponses"] = view.MyResponses
	renderData["ResponseCounts"] = counts
	renderData["Utensils"] = view.Utensils
	return renderer.Render(c, "panel/events/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// SubmitResponse oyuncunun bir etkinliğe zusage/absage cevabını kaydeder ve
// listeyi yeniden yükletmek için geri yönlendirir (iyimser güncelleme yok).
func (h *EventHandler) SubmitResponse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ungültiges Event.")
		return c.Redirect("/panel/events", fiber.StatusSeeOther)
	}
	eventID := uint(id)
	responseType := models.ResponseType(c.FormValue("response_type"))

	err = h.rsvpService.SetResponse(c.UserContext(), eventID, userID, responseType)
	if err != nil {
		errMsg := "Antwort konnte nicht gespeichert werden."
		switch {
		case errors.Is(err, services.ErrRSVPInvalidType):
			errMsg = "Ungültige Antwort."
		case errors.Is(err, services.ErrRSVPEventNotFound):
			errMsg = "Event nicht gefunden."
		default:
			configslog.Log.Error("Panel - SubmitResponse Error",
				zap.Uint("eventID", eventID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	}
	return c.Redirect("/panel/events", fiber.StatusSeeOther)
}
