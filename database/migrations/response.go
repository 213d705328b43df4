package migrations

import (
	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateEventResponsesTables EventResponse ve ResponseUtensil tablolarını
// oluşturur/günceller. Events, players ve utensils tabloları önce migrate
// edilmiş olmalıdır (FK için).
func MigrateEventResponsesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_responses tables...")
	if err := db.AutoMigrate(&models.EventResponse{}, &models.ResponseUtensil{}); err != nil {
		configslog.Log.Error("Failed to migrate event_responses tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Event_responses tables migrated successfully")
	return nil
}
