package seeders

import (
	"context"
	"errors"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedUtensils malzeme referans verilerini ekler. Mevcut kayıtlar atlanır;
// seeder tekrar çalıştırılabilir.
func SeedUtensils(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := models.ContextWithUserID(context.Background(), systemUserID)

	utensilsToSeed := []models.Utensil{
		{Name: "Ball", Icon: "⚽"},
		{Name: "Leibchen", Icon: "🎽"},
		{Name: "Pumpe", Icon: "🔧"},
		{Name: "Erste-Hilfe-Set", Icon: "🩹"},
	}

	var createdCount int64
	var errorOccurred bool

	configslog.SLog.Info("Malzeme seed işlemi başlıyor...")

	for _, utensilToSeed := range utensilsToSeed {
		var existing models.Utensil
		result := db.Where("name = ?", utensilToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Malzeme '%s' zaten mevcut, oluşturma atlanıyor.", utensilToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Malzeme kontrol edilirken veritabanı hatası",
				zap.String("utensil_name", utensilToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.WithContext(ctx).Create(&utensilToSeed).Error; err != nil {
			configslog.Log.Error("Malzeme oluşturulamadı",
				zap.String("utensil_name", utensilToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni malzeme başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm malzemeler zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("malzemeler seed edilirken en az bir hata oluştu")
	}
	return nil
}
