package bot

import (
	"context"
	"time"

	"luckycasino/bot/common"
	"luckycasino/bot/features/balance"
	"luckycasino/bot/features/greeting"
	"luckycasino/bot/features/miniapp"
	"luckycasino/events"
	"luckycasino/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	WebAppURL   string
	PollTimeout time.Duration
}

// Client is the Telegram API surface the bot needs. *tgbotapi.BotAPI satisfies it.
type Client interface {
	common.Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// CommandHandler handles a single bot command
type CommandHandler func(ctx context.Context, msg *tgbotapi.Message)

// Bot manages the Telegram long-polling loop and all feature modules
type Bot struct {
	config   Config
	client   Client
	eventBus *events.Bus

	// Feature modules
	greeting *greeting.Feature
	balance  *balance.Feature
	miniapp  *miniapp.Feature

	commands map[string]CommandHandler
}

// New creates a new bot instance with all features
func New(config Config, client Client, profileService service.ProfileService, eventBus *events.Bus) *Bot {
	bot := &Bot{
		config:   config,
		client:   client,
		eventBus: eventBus,
		greeting: greeting.New(client, config.WebAppURL),
		balance:  balance.New(client, profileService, config.WebAppURL),
		miniapp:  miniapp.New(client, config.WebAppURL),
	}

	bot.commands = map[string]CommandHandler{
		"start":   bot.greeting.HandleStart,
		"help":    bot.greeting.HandleHelp,
		"balance": bot.balance.HandleBalance,
		"profile": bot.balance.HandleProfile,
	}

	return bot
}

// Run polls Telegram for updates and dispatches them one at a time until
// the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(b.config.PollTimeout / time.Second)
	updateConfig.AllowedUpdates = []string{"message", "callback_query"}

	updates := b.client.GetUpdatesChan(updateConfig)
	log.Info("Bot is polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.client.StopReceivingUpdates()
			log.Info("Bot stopped receiving updates")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	player := common.PlayerFromUser(msg.From)

	if msg.WebAppData != nil {
		b.miniapp.HandleWebAppData(ctx, msg)
		b.emit(ctx, events.WebAppDataReceivedEvent{
			UserID:  player.ID,
			Payload: msg.WebAppData.Data,
		})
		return
	}

	if !msg.IsCommand() {
		return
	}

	command := msg.Command()
	handler, ok := b.commands[command]
	if !ok {
		log.WithFields(log.Fields{
			"userID":  player.ID,
			"command": command,
		}).Debug("Ignoring unknown command")
		return
	}

	log.WithFields(log.Fields{
		"userID":  player.ID,
		"command": command,
	}).Debug("Handling command")

	handler(ctx, msg)
	b.emit(ctx, events.CommandHandledEvent{
		UserID:  player.ID,
		Command: command,
	})
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	recognized := b.miniapp.HandleCallback(ctx, query)
	b.emit(ctx, events.CallbackAnsweredEvent{
		UserID:     common.PlayerFromUser(query.From).ID,
		Data:       query.Data,
		Recognized: recognized,
	})
}

func (b *Bot) emit(ctx context.Context, event events.Event) {
	if b.eventBus != nil {
		b.eventBus.Emit(ctx, event)
	}
}
