package services

import (
	"context"
	"testing"
	"time"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB her test için bağımsız bir in-memory SQLite veritabanı açar.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if configslog.Log == nil {
		configslog.InitLogger()
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Player{},
		&models.Event{},
		&models.Utensil{},
		&models.EventResponse{},
		&models.ResponseUtensil{},
	)
	require.NoError(t, err)
	return db
}

func createTestPlayer(t *testing.T, db *gorm.DB, email, nickname string, active, admin bool) *models.Player {
	t.Helper()
	player := &models.Player{Email: email, Nickname: nickname, IsActive: active, IsAdmin: admin}
	require.NoError(t, db.Create(player).Error)
	return player
}

func createTestEvent(t *testing.T, db *gorm.DB, title string, date time.Time) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:     title,
		Location:  "Park",
		EventDate: date,
		TimeFrom:  "18:00",
		TimeTo:    "19:00",
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func testContext() context.Context {
	return context.Background()
}
