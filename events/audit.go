package events

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// SubscribeAuditLog writes one info line per bot event
func SubscribeAuditLog(bus *Bus) {
	bus.Subscribe(EventTypeCommandHandled, func(ctx context.Context, event Event) {
		if e, ok := event.(CommandHandledEvent); ok {
			log.WithFields(log.Fields{
				"userID":  e.UserID,
				"command": e.Command,
			}).Info("Command handled")
		}
	})

	bus.Subscribe(EventTypeCallbackAnswered, func(ctx context.Context, event Event) {
		if e, ok := event.(CallbackAnsweredEvent); ok {
			log.WithFields(log.Fields{
				"userID":     e.UserID,
				"data":       e.Data,
				"recognized": e.Recognized,
			}).Info("Callback answered")
		}
	})

	bus.Subscribe(EventTypeWebAppDataReceived, func(ctx context.Context, event Event) {
		if e, ok := event.(WebAppDataReceivedEvent); ok {
			log.WithFields(log.Fields{
				"userID":      e.UserID,
				"payloadSize": len(e.Payload),
			}).Info("Mini app data received")
		}
	})
}
