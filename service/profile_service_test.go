package service

import (
	"context"
	"testing"

	"luckycasino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	service := NewStubProfileService()

	profile, err := service.GetProfile(ctx, models.Player{ID: 123456, FirstName: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(123456), profile.PlayerID)
	assert.Equal(t, int64(1000), profile.Balance)
	assert.Equal(t, int64(15), profile.GamesPlayed)
	assert.Equal(t, int64(2500), profile.TotalWinnings)
	assert.Equal(t, "2024-01-15", profile.RegisteredAt.Format("2006-01-02"))
}

func TestStubProfileService_SameValuesForEveryPlayer(t *testing.T) {
	ctx := context.Background()
	service := NewStubProfileService()

	alice, err := service.GetProfile(ctx, models.Player{ID: 1, FirstName: "Alice"})
	require.NoError(t, err)
	bob, err := service.GetProfile(ctx, models.Player{ID: 2, FirstName: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, alice.Balance, bob.Balance)
	assert.Equal(t, alice.GamesPlayed, bob.GamesPlayed)
	assert.Equal(t, alice.TotalWinnings, bob.TotalWinnings)
	assert.Equal(t, alice.RegisteredAt, bob.RegisteredAt)
}

func TestStubProfileService_ReturnsFreshProfile(t *testing.T) {
	ctx := context.Background()
	service := NewStubProfileService()
	player := models.Player{ID: 99}

	first, err := service.GetProfile(ctx, player)
	require.NoError(t, err)
	first.Balance = 0

	second, err := service.GetProfile(ctx, player)
	require.NoError(t, err)
	assert.Equal(t, StubBalance, second.Balance)
}
