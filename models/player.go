package models

import "strings"

// Player is the Telegram user behind an incoming update
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// DisplayName returns the full name, falling back to the username
func (p Player) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		return name
	}
	if p.Username != "" {
		return p.Username
	}
	return "player"
}
