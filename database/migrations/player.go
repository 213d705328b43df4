package migrations

import (
	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigratePlayersTable Player modeli için tabloyu oluşturur/günceller.
func MigratePlayersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating players table...")
	if err := db.AutoMigrate(&models.Player{}); err != nil {
		configslog.Log.Error("Failed to migrate players table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Players table migrated successfully")
	return nil
}
