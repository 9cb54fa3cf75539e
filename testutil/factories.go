package testutil

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CallbackMessageID is the message ID carried by test callback queries
const CallbackMessageID = 77

// CreateTestUser creates a Telegram user with default values
func CreateTestUser(id int64, firstName string) *tgbotapi.User {
	return &tgbotapi.User{
		ID:        id,
		FirstName: firstName,
		UserName:  "test_user",
	}
}

// CreateCommandMessage creates a private chat message carrying /command
func CreateCommandMessage(command string, from *tgbotapi.User) *tgbotapi.Message {
	text := "/" + command
	return &tgbotapi.Message{
		MessageID: 1,
		From:      from,
		Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
		Text:      text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(text)},
		},
	}
}

// CreateTextMessage creates a private chat message without a command
func CreateTextMessage(text string, from *tgbotapi.User) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 2,
		From:      from,
		Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
		Text:      text,
	}
}

// CreateWebAppDataMessage creates a service message with a mini app payload
func CreateWebAppDataMessage(payload string, from *tgbotapi.User) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 3,
		From:      from,
		Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
		WebAppData: &tgbotapi.WebAppData{
			Data:       payload,
			ButtonText: "🎰 Open casino",
		},
	}
}

// CreateCallbackQuery creates a callback query attached to a bot message
func CreateCallbackQuery(data string, from *tgbotapi.User) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "callback-1",
		From: from,
		Message: &tgbotapi.Message{
			MessageID: CallbackMessageID,
			Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
		},
		Data: data,
	}
}
