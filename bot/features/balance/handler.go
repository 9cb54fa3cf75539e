package balance

import (
	"context"
	"fmt"

	"luckycasino/bot/common"
	"luckycasino/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// BalanceText renders the /balance reply
func BalanceText(balance int64) string {
	return fmt.Sprintf("💰 <b>Your balance:</b> %s\n\n"+
		"Tap the button below to top up your balance or start playing:", common.FormatAmount(balance))
}

// ProfileText renders the /profile reply
func ProfileText(player models.Player, profile *models.Profile) string {
	return fmt.Sprintf(`👤 <b>Player profile</b>

<b>Name:</b> %s
<b>ID:</b> %d
<b>Balance:</b> %s
<b>Games played:</b> %d
<b>Total winnings:</b> %s
<b>Registered:</b> %s

Tap the button below to open the casino:`,
		common.EscapeHTML(player.FirstName),
		player.ID,
		common.FormatAmount(profile.Balance),
		profile.GamesPlayed,
		common.FormatAmount(profile.TotalWinnings),
		common.FormatDate(profile.RegisteredAt),
	)
}

func (f *Feature) HandleBalance(ctx context.Context, msg *tgbotapi.Message) {
	player := common.PlayerFromUser(msg.From)

	profile, err := f.profileService.GetProfile(ctx, player)
	if err != nil {
		log.Errorf("Error getting profile for user %d: %v", player.ID, err)
		common.RespondWithError(f.sender, msg.Chat.ID, "Unable to retrieve balance. Please try again.")
		return
	}

	keyboard := common.LauncherKeyboard(common.OpenCasinoButtonText, f.webAppURL)
	if err := common.ReplyHTML(f.sender, msg.Chat.ID, BalanceText(profile.Balance), &keyboard); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (f *Feature) HandleProfile(ctx context.Context, msg *tgbotapi.Message) {
	player := common.PlayerFromUser(msg.From)

	profile, err := f.profileService.GetProfile(ctx, player)
	if err != nil {
		log.Errorf("Error getting profile for user %d: %v", player.ID, err)
		common.RespondWithError(f.sender, msg.Chat.ID, "Unable to retrieve profile. Please try again.")
		return
	}

	keyboard := common.LauncherKeyboard(common.OpenCasinoButtonText, f.webAppURL)
	if err := common.ReplyHTML(f.sender, msg.Chat.ID, ProfileText(player, profile), &keyboard); err != nil {
		log.Errorf("Error responding to profile command: %v", err)
	}
}
