package models

import (
	"time"
)

// Profile represents a player's casino account summary
type Profile struct {
	PlayerID      int64
	Balance       int64 // in euros
	GamesPlayed   int64
	TotalWinnings int64 // in euros
	RegisteredAt  time.Time
}
