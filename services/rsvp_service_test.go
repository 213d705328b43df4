package services

import (
	"testing"
	"time"

	"sportevent.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetResponseCreatesWithDefaults(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := NewRSVPServiceTx(db)

	err := service.SetResponse(testContext(), event.ID, player.ID, models.ResponseTypeAccept)
	require.NoError(t, err)

	var response models.EventResponse
	require.NoError(t, db.Where("event_id = ? AND player_id = ?", event.ID, player.ID).First(&response).Error)
	assert.Equal(t, models.ResponseTypeAccept, response.ResponseType)
	assert.Equal(t, 0, response.GuestCount)
	assert.Empty(t, response.Comment)
}

func TestSetResponseUpsertsInPlace(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := NewRSVPServiceTx(db)

	require.NoError(t, service.SetResponse(testContext(), event.ID, player.ID, models.ResponseTypeAccept))
	require.NoError(t, service.SetResponse(testContext(), event.ID, player.ID, models.ResponseTypeDecline))

	// Tek kayıt kalmalı, türü yerinde güncellenmiş olmalı.
	var count int64
	require.NoError(t, db.Model(&models.EventResponse{}).
		Where("event_id = ? AND player_id = ?", event.ID, player.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var response models.EventResponse
	require.NoError(t, db.Where("event_id = ? AND player_id = ?", event.ID, player.ID).First(&response).Error)
	assert.Equal(t, models.ResponseTypeDecline, response.ResponseType)
}

func TestSetResponseSameKindTwiceStillUpdates(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := NewRSVPServiceTx(db)

	require.NoError(t, service.SetResponse(testContext(), event.ID, player.ID, models.ResponseTypeAccept))
	require.NoError(t, service.SetResponse(testContext(), event.ID, player.ID, models.ResponseTypeAccept))

	var count int64
	require.NoError(t, db.Model(&models.EventResponse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetResponseSeparatePlayersSeparateRows(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	bob := createTestPlayer(t, db, "bob@example.com", "bob", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := NewRSVPServiceTx(db)

	require.NoError(t, service.SetResponse(testContext(), event.ID, alice.ID, models.ResponseTypeAccept))
	require.NoError(t, service.SetResponse(testContext(), event.ID, bob.ID, models.ResponseTypeDecline))

	var count int64
	require.NoError(t, db.Model(&models.EventResponse{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSetResponseRejectsInvalidType(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := NewRSVPServiceTx(db)

	err := service.SetResponse(testContext(), event.ID, player.ID, models.ResponseType("vielleicht"))
	assert.ErrorIs(t, err, ErrRSVPInvalidType)

	err = service.SetResponse(testContext(), event.ID, player.ID, models.ResponseType(""))
	assert.ErrorIs(t, err, ErrRSVPInvalidType)
}

func TestSetResponseUnknownEventFails(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	service := NewRSVPServiceTx(db)

	err := service.SetResponse(testContext(), 9999, player.ID, models.ResponseTypeAccept)
	assert.ErrorIs(t, err, ErrRSVPEventNotFound)
}
