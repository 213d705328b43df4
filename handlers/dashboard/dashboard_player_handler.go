package handlers

import (
	"errors"
	"net/http"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/pkg/flashmessages"
	"sportevent.link/pkg/queryparams"
	"sportevent.link/pkg/renderer"
	"sportevent.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PlayerHandler oyuncu yönetimi için handler (yönetim alanı).
type PlayerHandler struct {
	adminService services.IAdminService
}

// NewPlayerHandler yeni bir PlayerHandler örneği oluşturur.
func NewPlayerHandler() *PlayerHandler {
	return &PlayerHandler{adminService: services.NewAdminService()}
}

// ListPlayers tüm oyuncuları takma ada göre sıralı listeler.
func (h *PlayerHandler) ListPlayers(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("nickname")
	}
	if params.SortBy == "" {
		params.SortBy = "nickname"
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":  "Spielerverwaltung",
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	paginatedResult, err := h.adminService.GetPlayersPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListPlayers Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Spieler konnten nicht geladen werden."
		paginatedResult = &queryparams.PaginatedResult{Data: []models.Player{}, Meta: queryparams.PaginationMeta{}}
	}
	renderData["Result"] = paginatedResult

	return renderer.Render(c, "dashboard/players/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// TogglePlayerActive oyuncunun aktiflik durumunu tersine çevirir ve listeye
// dönerek tam yeniden yükleme yaptırır.
func (h *PlayerHandler) TogglePlayerActive(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ungültige Spieler-ID.")
		return c.Redirect("/dashboard/players", fiber.StatusSeeOther)
	}
	playerID := uint(id)
	active := c.FormValue("active") == "true"

	err = h.adminService.SetPlayerActive(c.UserContext(), playerID, active, adminUserID)
	if err != nil {
		errMsg := "Spielerstatus konnte nicht geändert werden."
		if errors.Is(err, services.ErrAdminPlayerNotFound) {
			errMsg = "Spieler nicht gefunden."
		} else {
			configslog.Log.Error("Dashboard - TogglePlayerActive Error",
				zap.Uint("playerID", playerID), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	}
	return c.Redirect("/dashboard/players", fiber.StatusSeeOther)
}
