package service

import (
	"context"
	"time"

	"luckycasino/models"
)

// Stub account values shown to every player until a real store exists
const (
	StubBalance       int64 = 1000
	StubGamesPlayed   int64 = 15
	StubTotalWinnings int64 = 2500
)

// StubRegistrationDate is the registration date reported for every player
var StubRegistrationDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

type stubProfileService struct{}

// NewStubProfileService creates a profile service that returns fixed values
// regardless of the caller. Nothing is stored or mutated.
func NewStubProfileService() ProfileService {
	return &stubProfileService{}
}

// GetProfile builds a fresh profile for every call
func (s *stubProfileService) GetProfile(ctx context.Context, player models.Player) (*models.Profile, error) {
	return &models.Profile{
		PlayerID:      player.ID,
		Balance:       StubBalance,
		GamesPlayed:   StubGamesPlayed,
		TotalWinnings: StubTotalWinnings,
		RegisteredAt:  StubRegistrationDate,
	}, nil
}
