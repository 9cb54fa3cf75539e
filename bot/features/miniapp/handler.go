package miniapp

import (
	"context"

	"luckycasino/bot/common"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const (
	openingText = "🎰 Opening the casino...\n\n" +
		"If the mini app did not open automatically, tap the button again."

	dataReceivedText = "✅ Casino data received!\n\n" +
		"Your game progress has been saved."
)

// HandleCallback acknowledges every callback query and redisplays the
// launcher for OpenCasinoCallback. It reports whether the data was recognized.
func (f *Feature) HandleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) bool {
	if err := common.AnswerCallback(f.sender, query.ID); err != nil {
		log.Errorf("Error answering callback query %s: %v", query.ID, err)
	}

	if query.Data != OpenCasinoCallback {
		return false
	}

	// Inline-mode callbacks carry no message to edit
	if query.Message == nil || query.Message.Chat == nil {
		return true
	}

	keyboard := common.LauncherKeyboard(common.OpenCasinoButtonText, f.webAppURL)
	if err := common.EditWithKeyboard(f.sender, query.Message.Chat.ID, query.Message.MessageID, openingText, keyboard); err != nil {
		log.Errorf("Error editing message for open_casino callback: %v", err)
	}
	return true
}

// HandleWebAppData logs the opaque mini app payload and acknowledges it.
// The payload is never parsed or stored.
func (f *Feature) HandleWebAppData(ctx context.Context, msg *tgbotapi.Message) {
	player := common.PlayerFromUser(msg.From)

	var payload string
	if msg.WebAppData != nil {
		payload = msg.WebAppData.Data
	}

	log.WithFields(log.Fields{
		"userID":      player.ID,
		"payloadSize": len(payload),
		"payload":     payload,
	}).Info("Received data from the mini app")

	keyboard := common.LauncherKeyboard(common.PlayAgainButtonText, f.webAppURL)
	if err := common.ReplyText(f.sender, msg.Chat.ID, dataReceivedText, &keyboard); err != nil {
		log.Errorf("Error responding to mini app data: %v", err)
	}
}
