package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"luckycasino/cmd"
	"luckycasino/config"
	"luckycasino/logging"

	log "github.com/sirupsen/logrus"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	command := "bot"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "version" {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal("Logging error: ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	switch command {
	case "bot":
		err = cmd.Run(ctx, cfg)
	case "serve":
		err = cmd.Serve(ctx, cfg)
	default:
		err = fmt.Errorf("unknown command %q, usage: casino-bot [bot|serve|version]", command)
	}
	if err != nil {
		log.Fatal("Application error: ", err)
	}
}
