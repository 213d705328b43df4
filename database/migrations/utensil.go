package migrations

import (
	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateUtensilsTable Utensil modeli için tabloyu oluşturur/günceller.
func MigrateUtensilsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating utensils table...")
	if err := db.AutoMigrate(&models.Utensil{}); err != nil {
		configslog.Log.Error("Failed to migrate utensils table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Utensils table migrated successfully")
	return nil
}
