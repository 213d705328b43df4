package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInActivePlayerSucceedsRegardlessOfPassphrase(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	service := NewAuthServiceTx(db)

	for _, passphrase := range []string{"", "irgendwas", "falsch123"} {
		player, err := service.SignIn(testContext(), "alice@example.com", passphrase)
		require.NoError(t, err)
		assert.Equal(t, "alice", player.Nickname)
	}
}

func TestSignInEmailIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	service := NewAuthServiceTx(db)

	player, err := service.SignIn(testContext(), "Alice@Example.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "alice", player.Nickname)
}

func TestSignInInactivePlayerFails(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "bob@example.com", "bob", false, false)
	service := NewAuthServiceTx(db)

	for _, passphrase := range []string{"", "richtig?"} {
		_, err := service.SignIn(testContext(), "bob@example.com", passphrase)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	}
}

func TestSignInUnknownEmailFails(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthServiceTx(db)

	_, err := service.SignIn(testContext(), "niemand@example.com", "x")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = service.SignIn(testContext(), "", "x")
	assert.ErrorIs(t, err, ErrAuthInvalidInput)
}

func TestCheckAuthResolvesActivePlayer(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	service := NewAuthServiceTx(db)

	resolved, err := service.CheckAuth(testContext(), player.ID)
	require.NoError(t, err)
	assert.Equal(t, player.ID, resolved.ID)
}

func TestCheckAuthFailsForDeactivatedPlayer(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "alice@example.com", "alice", true, false)
	service := NewAuthServiceTx(db)

	_, err := service.CheckAuth(testContext(), player.ID)
	require.NoError(t, err)

	// Yönetici oyuncuyu pasifleştirir; bir sonraki doğrulama düşmelidir.
	require.NoError(t, db.Model(player).Update("is_active", false).Error)
	_, err = service.CheckAuth(testContext(), player.ID)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestCheckAuthFailsForMissingID(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthServiceTx(db)

	_, err := service.CheckAuth(testContext(), 0)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = service.CheckAuth(testContext(), 9999)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
