package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEventDelivery tests that a subscriber receives the emitted event
func TestEventDelivery(t *testing.T) {
	bus := NewBus()

	received := make(chan WebAppDataReceivedEvent, 1)
	bus.Subscribe(EventTypeWebAppDataReceived, func(ctx context.Context, event Event) {
		if dataEvent, ok := event.(WebAppDataReceivedEvent); ok {
			received <- dataEvent
		} else {
			t.Errorf("Expected WebAppDataReceivedEvent, got %T", event)
		}
	})

	testEvent := WebAppDataReceivedEvent{UserID: 42, Payload: `{"win":500}`}
	bus.Emit(context.Background(), testEvent)

	select {
	case got := <-received:
		assert.Equal(t, testEvent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
}

// TestEventRoutingByType tests that handlers only see their own event type
func TestEventRoutingByType(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var commands []string
	var wg sync.WaitGroup
	wg.Add(2)

	bus.Subscribe(EventTypeCommandHandled, func(ctx context.Context, event Event) {
		defer wg.Done()
		mu.Lock()
		defer mu.Unlock()
		commands = append(commands, event.(CommandHandledEvent).Command)
	})
	bus.Subscribe(EventTypeCallbackAnswered, func(ctx context.Context, event Event) {
		t.Errorf("Callback handler received %T", event)
	})

	ctx := context.Background()
	bus.Emit(ctx, CommandHandledEvent{UserID: 1, Command: "start"})
	bus.Emit(ctx, CommandHandledEvent{UserID: 1, Command: "profile"})

	waitWithTimeout(t, &wg, 2*time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"start", "profile"}, commands)
}

// TestMultipleSubscribers tests that every subscriber of a type is called
func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventTypeCallbackAnswered, func(ctx context.Context, event Event) {
			wg.Done()
		})
	}

	bus.Emit(context.Background(), CallbackAnsweredEvent{UserID: 7, Data: "open_casino", Recognized: true})

	waitWithTimeout(t, &wg, 2*time.Second)
}

// TestPanickingHandlerDoesNotAffectOthers tests panic isolation between handlers
func TestPanickingHandlerDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{})
	bus.Subscribe(EventTypeCommandHandled, func(ctx context.Context, event Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypeCommandHandled, func(ctx context.Context, event Event) {
		close(done)
	})

	bus.Emit(context.Background(), CommandHandledEvent{UserID: 1, Command: "help"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Healthy handler was not called")
	}
}

func TestEmitWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), CommandHandledEvent{UserID: 1, Command: "balance"})
	})
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Timed out waiting for event handlers")
	}
}
