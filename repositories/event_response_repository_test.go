package repositories

import (
	"context"
	"testing"
	"time"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
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

func seedEventAndPlayer(t *testing.T, db *gorm.DB) (*models.Event, *models.Player) {
	t.Helper()
	player := &models.Player{Email: "alice@example.com", Nickname: "alice", IsActive: true}
	require.NoError(t, db.Create(player).Error)
	event := &models.Event{
		Title: "Training", Location: "Halle",
		EventDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeFrom:  "18:00", TimeTo: "19:00",
	}
	require.NoError(t, db.Create(event).Error)
	return event, player
}

func TestCreateOrUpdateUpsertsInPlace(t *testing.T) {
	db := setupRepoTestDB(t)
	event, player := seedEventAndPlayer(t, db)
	repo := NewEventResponseRepositoryTx(db)
	ctx := context.Background()

	first := &models.EventResponse{EventID: event.ID, PlayerID: player.ID, ResponseType: models.ResponseTypeAccept}
	require.NoError(t, repo.CreateOrUpdate(ctx, first))

	// Aynı çift için ikinci yazma yeni satır açmaz, türü yerinde günceller.
	second := &models.EventResponse{EventID: event.ID, PlayerID: player.ID, ResponseType: models.ResponseTypeDecline}
	require.NoError(t, repo.CreateOrUpdate(ctx, second))

	var count int64
	require.NoError(t, db.Model(&models.EventResponse{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByEventAndPlayer(ctx, event.ID, player.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResponseTypeDecline, stored.ResponseType)
	assert.Equal(t, first.ID, stored.ID)
}

func TestCreateOrUpdateRejectsMissingIDs(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewEventResponseRepositoryTx(db)

	assert.Error(t, repo.CreateOrUpdate(context.Background(), nil))
	assert.Error(t, repo.CreateOrUpdate(context.Background(), &models.EventResponse{EventID: 1}))
	assert.Error(t, repo.CreateOrUpdate(context.Background(), &models.EventResponse{PlayerID: 1}))
}

func TestFindByEventAndPlayerNotFound(t *testing.T) {
	db := setupRepoTestDB(t)
	event, player := seedEventAndPlayer(t, db)
	repo := NewEventResponseRepositoryTx(db)

	_, err := repo.FindByEventAndPlayer(context.Background(), event.ID, player.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllExpandedPreloadsRelations(t *testing.T) {
	db := setupRepoTestDB(t)
	event, player := seedEventAndPlayer(t, db)
	repo := NewEventResponseRepositoryTx(db)
	ctx := context.Background()

	response := &models.EventResponse{EventID: event.ID, PlayerID: player.ID, ResponseType: models.ResponseTypeAccept}
	require.NoError(t, repo.CreateOrUpdate(ctx, response))

	ball := &models.Utensil{Name: "Ball", Icon: "⚽"}
	require.NoError(t, db.Create(ball).Error)
	require.NoError(t, db.Create(&models.ResponseUtensil{ResponseID: response.ID, UtensilID: ball.ID}).Error)

	responses, err := repo.FindAllExpanded(ctx)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "alice", responses[0].Player.Nickname)
	require.Len(t, responses[0].ResponseUtensils, 1)
	assert.Equal(t, "Ball", responses[0].ResponseUtensils[0].Utensil.Name)
}
