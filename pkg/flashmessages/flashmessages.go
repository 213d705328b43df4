package flashmessages

import (
	"encoding/json"

	"sportevent.link/utils"

	"github.com/gofiber/fiber/v2"
)

// Flash mesajların session içindeki anahtarları.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData bir sonraki istekte gösterilecek mesajlar.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage verilen anahtara tek seferlik bir mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages bekleyen mesajları okur ve session'dan temizler.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}

// SetFlashFormData hatalı form gönderiminin verisini bir sonraki istek için saklar.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve temizler.
// Veri yoksa boş bir map döner; view tarafı doğrudan kullanabilir.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	formData := map[string]interface{}{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return formData
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok {
		return formData
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()
	_ = json.Unmarshal([]byte(raw), &formData)
	return formData
}
