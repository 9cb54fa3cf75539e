package service

import (
	"context"

	"luckycasino/models"
)

// ProfileService defines the interface for reading a player's casino account
type ProfileService interface {
	// GetProfile returns the account summary for the given player
	GetProfile(ctx context.Context, player models.Player) (*models.Profile, error)
}
