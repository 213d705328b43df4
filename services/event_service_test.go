package services

import (
	"testing"
	"time"

	"sportevent.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllBuildsOrderedView(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	later := createTestEvent(t, db, "Turnier", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))
	earlier := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&models.Utensil{Name: "Ball", Icon: "⚽"}).Error)

	service := NewEventServiceTx(db)
	view, err := service.LoadAll(testContext(), player.ID)
	require.NoError(t, err)

	// Etkinlikler tarihe göre artan sırada gelmeli.
	require.Len(t, view.Events, 2)
	assert.Equal(t, earlier.ID, view.Events[0].ID)
	assert.Equal(t, later.ID, view.Events[1].ID)
	assert.Len(t, view.Utensils, 1)
	assert.Empty(t, view.MyResponses)
}

func TestLoadAllFiltersResponsesToViewer(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	bob := createTestPlayer(t, db, "bob@example.com", "bob", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	rsvpService := NewRSVPServiceTx(db)
	require.NoError(t, rsvpService.SetResponse(testContext(), event.ID, alice.ID, models.ResponseTypeAccept))
	require.NoError(t, rsvpService.SetResponse(testContext(), event.ID, bob.ID, models.ResponseTypeDecline))

	service := NewEventServiceTx(db)
	view, err := service.LoadAll(testContext(), alice.ID)
	require.NoError(t, err)

	require.Len(t, view.MyResponses, 1)
	response, ok := view.MyResponses[event.ID]
	require.True(t, ok)
	assert.Equal(t, models.ResponseTypeAccept, response.ResponseType)
	// Genişletilmiş okuma oyuncuyu da getirmeli.
	assert.Equal(t, "alice", response.Player.Nickname)
}

func TestLoadAllFailureKeepsPreviousView(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&models.Utensil{Name: "Ball"}).Error)

	service := NewEventServiceTx(db)
	view, err := service.LoadAll(testContext(), player.ID)
	require.NoError(t, err)
	require.Len(t, view.Events, 1)

	// Utensil okuması artık başarısız olacak; yenileme bütünüyle iptal
	// edilmeli ve önceki görünüm olduğu gibi kalmalı.
	require.NoError(t, db.Migrator().DropTable(&models.Utensil{}))
	_, err = service.LoadAll(testContext(), player.ID)
	assert.ErrorIs(t, err, ErrEventSyncFailed)

	current := service.CurrentView(player.ID)
	require.NotNil(t, current)
	assert.Len(t, current.Events, 1)
	assert.Len(t, current.Utensils, 1)
}

func TestLoadAllFailureDoesNotLeakAnotherViewersView(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	bob := createTestPlayer(t, db, "bob@example.com", "bob", true, false)
	event := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&models.Utensil{Name: "Ball"}).Error)

	rsvpService := NewRSVPServiceTx(db)
	require.NoError(t, rsvpService.SetResponse(testContext(), event.ID, bob.ID, models.ResponseTypeAccept))

	service := NewEventServiceTx(db)
	aliceView, err := service.LoadAll(testContext(), alice.ID)
	require.NoError(t, err)
	_, err = service.LoadAll(testContext(), bob.ID)
	require.NoError(t, err)

	// Alice'in yenilemesi başarısız olduğunda geriye düşülen görünüm bob'un
	// değil, alice'in son uygulanan görünümü olmalı.
	require.NoError(t, db.Migrator().DropTable(&models.Utensil{}))
	_, err = service.LoadAll(testContext(), alice.ID)
	assert.ErrorIs(t, err, ErrEventSyncFailed)

	current := service.CurrentView(alice.ID)
	require.NotNil(t, current)
	assert.Equal(t, alice.ID, current.PlayerID)
	assert.Empty(t, current.MyResponses)
	assert.Equal(t, 0, current.ResponseCountFor(event.ID))
	assert.Same(t, aliceView, current)
}

func TestResponseCountForViewerOnly(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	bob := createTestPlayer(t, db, "bob@example.com", "bob", true, false)
	answered := createTestEvent(t, db, "5-a-side", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	unanswered := createTestEvent(t, db, "Turnier", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))

	rsvpService := NewRSVPServiceTx(db)
	require.NoError(t, rsvpService.SetResponse(testContext(), answered.ID, alice.ID, models.ResponseTypeAccept))
	require.NoError(t, rsvpService.SetResponse(testContext(), answered.ID, bob.ID, models.ResponseTypeAccept))

	service := NewEventServiceTx(db)

	aliceView, err := service.LoadAll(testContext(), alice.ID)
	require.NoError(t, err)
	bobView, err := service.LoadAll(testContext(), bob.ID)
	require.NoError(t, err)

	// Sayaç yalnızca görüntüleyenin kendi cevabını sayar; bob'un cevabı
	// alice'in görünümündeki toplama dahil değildir.
	assert.Equal(t, 1, aliceView.ResponseCountFor(answered.ID))
	assert.Equal(t, 0, aliceView.ResponseCountFor(unanswered.ID))
	assert.Equal(t, 1, bobView.ResponseCountFor(answered.ID))

	// Nil görünüm her zaman 0 sayar.
	var noView *EventView
	assert.Equal(t, 0, noView.ResponseCountFor(answered.ID))
}

func TestCurrentViewIsPerPlayer(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	bob := createTestPlayer(t, db, "bob@example.com", "bob", true, false)

	service := NewEventServiceTx(db)
	assert.Nil(t, service.CurrentView(alice.ID))

	_, err := service.LoadAll(testContext(), bob.ID)
	require.NoError(t, err)

	// Bob'un yüklemesi alice için görünüm üretmez.
	assert.Nil(t, service.CurrentView(alice.ID))
	require.NotNil(t, service.CurrentView(bob.ID))
	assert.Equal(t, bob.ID, service.CurrentView(bob.ID).PlayerID)
}
