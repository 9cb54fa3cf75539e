package common

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Sender is the part of the Telegram client the handlers talk to.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Button labels for the mini app launcher
const (
	OpenCasinoButtonText = "🎰 Open casino"
	PlayAgainButtonText  = "🎰 Play again"
)

// LauncherKeyboard builds a single-button keyboard that opens the mini app
func LauncherKeyboard(text, webAppURL string) tgbotapi.InlineKeyboardMarkup {
	button := tgbotapi.InlineKeyboardButton{
		Text:   text,
		WebApp: &tgbotapi.WebAppInfo{URL: webAppURL},
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(button))
}

// ReplyHTML sends an HTML formatted message, optionally with an inline keyboard
func ReplyHTML(s Sender, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	_, err := s.Send(msg)
	return err
}

// ReplyText sends a plain text message, optionally with an inline keyboard
func ReplyText(s Sender, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	_, err := s.Send(msg)
	return err
}

// RespondWithError sends a plain error message and logs if that fails too
func RespondWithError(s Sender, chatID int64, message string) {
	if err := ReplyText(s, chatID, message, nil); err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// AnswerCallback acknowledges a callback query so the client stops its spinner
func AnswerCallback(s Sender, callbackID string) error {
	_, err := s.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// EditWithKeyboard replaces the text and keyboard of an existing message
func EditWithKeyboard(s Sender, chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	_, err := s.Send(edit)
	return err
}
