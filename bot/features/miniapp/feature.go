package miniapp

import (
	"luckycasino/bot/common"
)

// OpenCasinoCallback is the only callback data the bot reacts to
const OpenCasinoCallback = "open_casino"

// Feature handles launcher button presses and data pushed back by the mini app
type Feature struct {
	sender    common.Sender
	webAppURL string
}

// New creates a new mini app feature instance
func New(sender common.Sender, webAppURL string) *Feature {
	return &Feature{
		sender:    sender,
		webAppURL: webAppURL,
	}
}
