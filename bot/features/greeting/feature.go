package greeting

import (
	"luckycasino/bot/common"
)

// Feature handles the /start and /help commands
type Feature struct {
	sender    common.Sender
	webAppURL string
}

// New creates a new greeting feature instance
func New(sender common.Sender, webAppURL string) *Feature {
	return &Feature{
		sender:    sender,
		webAppURL: webAppURL,
	}
}
