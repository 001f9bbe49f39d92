package ports

import (
	"context"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// EventSubscriber defines the interface for subscribing to events.
// Handlers are registered with the subscriber and invoked when events occur.
type EventSubscriber interface {
	OnTeleportCompleted(handler func(context.Context, domain.TeleportCompletedEvent))
	OnTeleportCancelled(handler func(context.Context, domain.TeleportCancelledEvent))
}
