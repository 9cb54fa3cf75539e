package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeCommandHandled     EventType = "command_handled"
	EventTypeCallbackAnswered   EventType = "callback_answered"
	EventTypeWebAppDataReceived EventType = "web_app_data_received"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// CommandHandledEvent is emitted after a bot command was dispatched
type CommandHandledEvent struct {
	UserID  int64
	Command string
}

func (e CommandHandledEvent) Type() EventType {
	return EventTypeCommandHandled
}

// CallbackAnsweredEvent is emitted for every callback query the bot acknowledged
type CallbackAnsweredEvent struct {
	UserID     int64
	Data       string
	Recognized bool
}

func (e CallbackAnsweredEvent) Type() EventType {
	return EventTypeCallbackAnswered
}

// WebAppDataReceivedEvent carries the opaque payload pushed by the mini app
type WebAppDataReceivedEvent struct {
	UserID  int64
	Payload string
}

func (e WebAppDataReceivedEvent) Type() EventType {
	return EventTypeWebAppDataReceived
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking the update loop
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
