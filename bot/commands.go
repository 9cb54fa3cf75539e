package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// commandList is what Telegram shows in the client's command menu
var commandList = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot and open the casino"},
	{Command: "help", Description: "Show help"},
	{Command: "balance", Description: "Check your balance"},
	{Command: "profile", Description: "Your profile"},
}

// RegisterCommands publishes the command menu to Telegram
func (b *Bot) RegisterCommands() error {
	if _, err := b.client.Request(tgbotapi.NewSetMyCommands(commandList...)); err != nil {
		return fmt.Errorf("cannot register bot commands: %w", err)
	}
	return nil
}
