package cmd

import (
	"context"
	"fmt"

	"luckycasino/bot"
	"luckycasino/config"
	"luckycasino/events"
	"luckycasino/metrics"
	"luckycasino/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the Telegram bot
func Run(ctx context.Context, cfg *config.Config) error {
	log.Info("Starting casino bot...")

	if err := cfg.RequireBotToken(); err != nil {
		log.Error("BOT_TOKEN is not set, add it to the environment or a .env file")
		return err
	}

	// Initialize event bus and its subscribers
	eventBus := events.NewBus()
	events.SubscribeAuditLog(eventBus)
	m := startMetrics(ctx, cfg)
	if m != nil {
		m.Subscribe(eventBus)
	}

	// Initialize Telegram client
	log.Info("Connecting to Telegram...")
	if err := tgbotapi.SetLogger(log.StandardLogger()); err != nil {
		log.Warnf("Cannot route Telegram client logs through logrus: %v", err)
	}
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	api.Debug = cfg.BotDebug
	log.WithField("username", api.Self.UserName).Info("Authorized on Telegram")

	botConfig := bot.Config{
		WebAppURL:   cfg.WebAppURL,
		PollTimeout: cfg.PollTimeout,
	}
	casinoBot := bot.New(botConfig, api, service.NewStubProfileService(), eventBus)

	if err := casinoBot.RegisterCommands(); err != nil {
		log.Warnf("Command menu not updated: %v", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	if err := casinoBot.Run(ctx); err != nil {
		return fmt.Errorf("bot stopped: %w", err)
	}

	log.Info("Shutdown completed")
	return nil
}

// startMetrics starts the Prometheus listener when METRICS_ADDR is set
func startMetrics(ctx context.Context, cfg *config.Config) *metrics.Metrics {
	if cfg.MetricsAddr == "" {
		return nil
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	go func() {
		if err := metrics.Serve(ctx, cfg.MetricsAddr, registry); err != nil {
			log.Errorf("Metrics server error: %v", err)
		}
	}()

	return m
}
