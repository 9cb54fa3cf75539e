package balance

import (
	"luckycasino/bot/common"
	"luckycasino/service"
)

// Feature handles the /balance and /profile commands
type Feature struct {
	sender         common.Sender
	profileService service.ProfileService
	webAppURL      string
}

func New(sender common.Sender, profileService service.ProfileService, webAppURL string) *Feature {
	return &Feature{
		sender:         sender,
		profileService: profileService,
		webAppURL:      webAppURL,
	}
}
