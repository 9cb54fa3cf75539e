package greeting

import (
	"context"
	"fmt"

	"luckycasino/bot/common"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const helpText = `🎰 <b>Lucky Casino Bot</b>

<b>Available commands:</b>
/start - Start the bot and open the casino
/help - Show this help
/balance - Check your balance
/profile - Your profile

<b>Casino games:</b>
• The Dog House Megaways
• Classic slots
• Blackjack
• Roulette
• Poker

<b>Bonuses:</b>
• 200% welcome bonus
• 50€ no-deposit bonus
• Loyalty programme

<b>Support:</b>
Contact @support with any questions`

// StartText renders the greeting for the given player mention
func StartText(mention string) string {
	return fmt.Sprintf("Hi, %s! 👋\n\n"+
		"Welcome to <b>Lucky Casino Bot</b>! 🎰\n\n"+
		"Tap the button below to open the casino and start playing:", mention)
}

// HandleStart greets the player and attaches the casino launcher
func (f *Feature) HandleStart(ctx context.Context, msg *tgbotapi.Message) {
	player := common.PlayerFromUser(msg.From)
	keyboard := common.LauncherKeyboard(common.OpenCasinoButtonText, f.webAppURL)

	if err := common.ReplyHTML(f.sender, msg.Chat.ID, StartText(common.MentionHTML(player)), &keyboard); err != nil {
		log.Errorf("Error responding to start command: %v", err)
	}
}

// HandleHelp sends the fixed help text
func (f *Feature) HandleHelp(ctx context.Context, msg *tgbotapi.Message) {
	if err := common.ReplyHTML(f.sender, msg.Chat.ID, helpText, nil); err != nil {
		log.Errorf("Error responding to help command: %v", err)
	}
}
