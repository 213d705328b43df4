package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session içinde tutulan anahtarlar.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyIsAdmin  = "is_admin"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("session içinde kullanıcı ID yok")
)

// SessionStart locals'taki store üzerinden mevcut isteğin oturumunu açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetUserSession giriş yapan oyuncunun bilgilerini oturuma yazar.
func SetUserSession(sess *session.Session, userID uint, userName string, isAdmin bool) error {
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUserName, userName)
	sess.Set(SessionKeyIsAdmin, isAdmin)
	return sess.Save()
}

// GetUserIDFromSession oturumdaki oyuncu ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	if id, ok := sess.Get(SessionKeyUserID).(uint); ok && id != 0 {
		return id, nil
	}
	return 0, ErrUserIDMissing
}

// GetIsAdminFromSession oturumdaki yönetici bayrağını döndürür.
func GetIsAdminFromSession(sess *session.Session) (bool, error) {
	if isAdmin, ok := sess.Get(SessionKeyIsAdmin).(bool); ok {
		return isAdmin, nil
	}
	return false, ErrUserIDMissing
}

// DestroySession oturumu ve kalıcı kimliği temizler. Hata durumunda bile
// çağıran akış devam edebilir; temizlik en iyi çabadır.
func DestroySession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
