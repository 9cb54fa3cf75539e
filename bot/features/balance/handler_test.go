package balance

import (
	"context"
	"errors"
	"testing"

	"luckycasino/bot/common"
	"luckycasino/models"
	"luckycasino/service"
	"luckycasino/testutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWebAppURL = "https://casino.example/telegram_webapp.html"

func assertLauncher(t *testing.T, msg tgbotapi.MessageConfig) {
	t.Helper()
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, keyboard.InlineKeyboard, 1)
	require.Len(t, keyboard.InlineKeyboard[0], 1)
	require.NotNil(t, keyboard.InlineKeyboard[0][0].WebApp)
	assert.Equal(t, testWebAppURL, keyboard.InlineKeyboard[0][0].WebApp.URL)
}

func TestHandleBalance_FixedBalance(t *testing.T) {
	sender := new(common.MockSender)
	sender.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)
	feature := New(sender, service.NewStubProfileService(), testWebAppURL)

	feature.HandleBalance(context.Background(), testutil.CreateCommandMessage("balance", testutil.CreateTestUser(1, "Alice")))
	feature.HandleBalance(context.Background(), testutil.CreateCommandMessage("balance", testutil.CreateTestUser(2, "Bob")))

	sent := sender.SentMessages()
	require.Len(t, sent, 2)
	assert.Equal(t, sent[0].Text, sent[1].Text)
	assert.Contains(t, sent[0].Text, "1000€")
	assert.Equal(t, tgbotapi.ModeHTML, sent[0].ParseMode)
	assertLauncher(t, sent[0])
}

func TestHandleProfile_StubValues(t *testing.T) {
	sender := new(common.MockSender)
	sender.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)
	feature := New(sender, service.NewStubProfileService(), testWebAppURL)

	feature.HandleProfile(context.Background(), testutil.CreateCommandMessage("profile", testutil.CreateTestUser(123456, "Alice")))

	sent := sender.SentMessages()
	require.Len(t, sent, 1)
	for _, value := range []string{"1000", "15", "2500", "2024-01-15", "Alice", "123456"} {
		assert.Contains(t, sent[0].Text, value)
	}
	assertLauncher(t, sent[0])
}

func TestHandleProfile_EscapesName(t *testing.T) {
	sender := new(common.MockSender)
	sender.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)
	feature := New(sender, service.NewStubProfileService(), testWebAppURL)

	feature.HandleProfile(context.Background(), testutil.CreateCommandMessage("profile", testutil.CreateTestUser(1, "<i>Mallory</i>")))

	sent := sender.SentMessages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "&lt;i&gt;Mallory&lt;/i&gt;")
	assert.NotContains(t, sent[0].Text, "<i>")
}

func TestHandleProfile_UsesProfileService(t *testing.T) {
	ctx := context.Background()
	sender := new(common.MockSender)
	sender.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)
	profiles := new(service.MockProfileService)
	feature := New(sender, profiles, testWebAppURL)

	user := testutil.CreateTestUser(55, "Carol")
	profiles.On("GetProfile", ctx, common.PlayerFromUser(user)).Return(&models.Profile{
		PlayerID:      55,
		Balance:       1000,
		GamesPlayed:   15,
		TotalWinnings: 2500,
		RegisteredAt:  service.StubRegistrationDate,
	}, nil)

	feature.HandleProfile(ctx, testutil.CreateCommandMessage("profile", user))

	profiles.AssertExpectations(t)
	require.Len(t, sender.SentMessages(), 1)
}

func TestHandleBalance_ServiceError(t *testing.T) {
	ctx := context.Background()
	sender := new(common.MockSender)
	sender.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)
	profiles := new(service.MockProfileService)
	profiles.On("GetProfile", ctx, mock.Anything).Return(nil, errors.New("store unavailable"))
	feature := New(sender, profiles, testWebAppURL)

	feature.HandleBalance(ctx, testutil.CreateCommandMessage("balance", testutil.CreateTestUser(1, "Alice")))

	sent := sender.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Unable to retrieve balance. Please try again.", sent[0].Text)
	assert.Nil(t, sent[0].ReplyMarkup)
}

func TestProfileText(t *testing.T) {
	player := models.Player{ID: 9, FirstName: "Dana"}
	profile := &models.Profile{Balance: 1000, GamesPlayed: 15, TotalWinnings: 2500, RegisteredAt: service.StubRegistrationDate}

	text := ProfileText(player, profile)

	assert.Contains(t, text, "<b>Name:</b> Dana")
	assert.Contains(t, text, "<b>ID:</b> 9")
	assert.Contains(t, text, "<b>Balance:</b> 1000€")
	assert.Contains(t, text, "<b>Games played:</b> 15")
	assert.Contains(t, text, "<b>Total winnings:</b> 2500€")
	assert.Contains(t, text, "<b>Registered:</b> 2024-01-15")
}

func TestProfileText_ShowsFirstNameOnly(t *testing.T) {
	player := models.Player{ID: 9, FirstName: "Dana", LastName: "Scully", Username: "dscully"}
	profile := &models.Profile{RegisteredAt: service.StubRegistrationDate}

	text := ProfileText(player, profile)

	assert.Contains(t, text, "<b>Name:</b> Dana\n")
	assert.NotContains(t, text, "Scully")
	assert.NotContains(t, text, "dscully")
}
