package seeders

import (
	"errors"
	"os"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdminPlayer başlangıç yönetici oyuncusunu oluşturur. Oyuncular kayıt
// akışı olmadığı için haricen açılır; bu ilk hesabı sağlar. E-posta ve takma
// ad ortam değişkenlerinden gelir, parola saklanmaz.
func SeedAdminPlayer(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@sportevent.local"
	}
	nickname := os.Getenv("ADMIN_NICKNAME")
	if nickname == "" {
		nickname = "Admin"
	}

	var existing models.Player
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Yönetici oyuncu '%s' zaten mevcut, oluşturma atlanıyor.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici oyuncu kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	admin := models.Player{
		Email:    email,
		Nickname: nickname,
		IsActive: true,
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Yönetici oyuncu oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici oyuncu oluşturuldu: %s (ID %d).", email, admin.ID)
	return nil
}
