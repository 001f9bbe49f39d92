package infrastructure

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// DefaultEventBufferSize is the default buffer size for event channels.
const DefaultEventBufferSize = 100

// Compile-time checks that ChannelEventBus implements ports interfaces.
var (
	_ ports.EventPublisher  = (*ChannelEventBus)(nil)
	_ ports.EventSubscriber = (*ChannelEventBus)(nil)
)

// ChannelEventBus provides a channel-based event bus for async event handling.
// Publishing never blocks, so it is safe to call from inside a world transaction.
type ChannelEventBus struct {
	teleportCompleted chan domain.TeleportCompletedEvent
	teleportCancelled chan domain.TeleportCancelledEvent

	teleportCompletedHandlers []func(context.Context, domain.TeleportCompletedEvent)
	teleportCancelledHandlers []func(context.Context, domain.TeleportCancelledEvent)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
	mu     sync.RWMutex
}

// NewChannelEventBus creates a new ChannelEventBus with the given buffer size.
func NewChannelEventBus(bufferSize int) *ChannelEventBus {
	if bufferSize <= 0 {
		bufferSize = DefaultEventBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	bus := &ChannelEventBus{
		teleportCompleted: make(chan domain.TeleportCompletedEvent, bufferSize),
		teleportCancelled: make(chan domain.TeleportCancelledEvent, bufferSize),
		ctx:               ctx,
		cancel:            cancel,
	}

	bus.wg.Add(2)
	go dispatch(bus, bus.teleportCompleted, func() []func(context.Context, domain.TeleportCompletedEvent) {
		return bus.teleportCompletedHandlers
	})
	go dispatch(bus, bus.teleportCancelled, func() []func(context.Context, domain.TeleportCancelledEvent) {
		return bus.teleportCancelledHandlers
	})

	return bus
}

// dispatch delivers events from ch to the handlers returned by handlers.
func dispatch[E any](
	b *ChannelEventBus,
	ch <-chan E,
	handlers func() []func(context.Context, E),
) {
	defer b.wg.Done()
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			b.mu.RLock()
			current := handlers()
			b.mu.RUnlock()
			for _, handler := range current {
				handler(b.ctx, event)
			}
		}
	}
}

// publish sends without blocking; a full buffer drops the event with a warning.
func publish[E any](b *ChannelEventBus, ch chan<- E, event E, eventType string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", eventType)
		return
	}

	select {
	case ch <- event:
		slog.Debug("published event", "type", eventType)
	default:
		slog.Warn("event buffer full, dropping event", "type", eventType)
	}
}

// --- EventPublisher interface ---

// PublishTeleportCompleted publishes a TeleportCompletedEvent.
func (b *ChannelEventBus) PublishTeleportCompleted(event domain.TeleportCompletedEvent) {
	publish(b, b.teleportCompleted, event, "TeleportCompleted")
}

// PublishTeleportCancelled publishes a TeleportCancelledEvent.
func (b *ChannelEventBus) PublishTeleportCancelled(event domain.TeleportCancelledEvent) {
	publish(b, b.teleportCancelled, event, "TeleportCancelled")
}

// --- EventSubscriber interface ---

// OnTeleportCompleted registers a handler for TeleportCompletedEvent.
func (b *ChannelEventBus) OnTeleportCompleted(
	handler func(context.Context, domain.TeleportCompletedEvent),
) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.teleportCompletedHandlers = append(b.teleportCompletedHandlers, handler)
}

// OnTeleportCancelled registers a handler for TeleportCancelledEvent.
func (b *ChannelEventBus) OnTeleportCancelled(
	handler func(context.Context, domain.TeleportCancelledEvent),
) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.teleportCancelledHandlers = append(b.teleportCancelledHandlers, handler)
}

// Close closes all event channels and stops dispatchers.
// After calling Close, publishing will no longer send events.
func (b *ChannelEventBus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	// Cancel context to stop dispatchers
	b.cancel()

	close(b.teleportCompleted)
	close(b.teleportCancelled)

	b.wg.Wait()

	slog.Debug("channel event bus closed")
}
