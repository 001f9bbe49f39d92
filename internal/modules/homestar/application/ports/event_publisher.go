package ports

import "github.com/sglre6355/homestar/internal/modules/homestar/domain"

// EventPublisher defines the interface for publishing events asynchronously.
type EventPublisher interface {
	PublishTeleportCompleted(event domain.TeleportCompletedEvent)
	PublishTeleportCancelled(event domain.TeleportCancelledEvent)
}
