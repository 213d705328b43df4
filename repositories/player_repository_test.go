package repositories

import (
	"context"
	"testing"

	"sportevent.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampsSurviveRoundTrip(t *testing.T) {
	db := setupRepoTestDB(t)
	player := &models.Player{Email: "alice@example.com", Nickname: "alice", IsActive: true}
	require.NoError(t, db.Create(player).Error)

	// Okuma, sürücüden bağımsız olarak zaman alanlarını geri çözebilmeli.
	var stored models.Player
	require.NoError(t, db.First(&stored, player.ID).Error)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestInactivePlayerPersistsInactive(t *testing.T) {
	db := setupRepoTestDB(t)
	player := &models.Player{Email: "bob@example.com", Nickname: "bob", IsActive: false}
	require.NoError(t, db.Create(player).Error)

	// IsActive=false yazıldığı gibi kalmalı; INSERT'te atlanmamalı.
	var stored models.Player
	require.NoError(t, db.First(&stored, player.ID).Error)
	assert.False(t, stored.IsActive)

	repo := NewPlayerRepositoryTx(db)
	_, err := repo.FindActiveByID(context.Background(), player.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindActiveByEmail(context.Background(), "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
