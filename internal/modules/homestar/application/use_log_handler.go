package application

import (
	"context"
	"log/slog"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// UseLogEventHandler records completed teleports.
// It writes a log line when use logging is enabled and relays each use to the
// optional external UseLog.
type UseLogEventHandler struct {
	subscriber ports.EventSubscriber
	useLog     ports.UseLog
	logUse     bool
}

// NewUseLogEventHandler creates a new UseLogEventHandler. useLog may be nil.
func NewUseLogEventHandler(
	subscriber ports.EventSubscriber,
	useLog ports.UseLog,
	logUse bool,
) *UseLogEventHandler {
	return &UseLogEventHandler{
		subscriber: subscriber,
		useLog:     useLog,
		logUse:     logUse,
	}
}

// Start registers event handlers with the subscriber.
func (h *UseLogEventHandler) Start() {
	h.subscriber.OnTeleportCompleted(h.handleTeleportCompleted)
	h.subscriber.OnTeleportCancelled(h.handleTeleportCancelled)

	slog.Debug("use log event handlers properly registered")
}

func (h *UseLogEventHandler) handleTeleportCompleted(
	ctx context.Context,
	event domain.TeleportCompletedEvent,
) {
	dest := event.Destination.Location

	if h.logUse {
		slog.Info(
			"homestar used",
			"player", event.PlayerName,
			"destination", event.Destination.Kind.String(),
			"world", dest.World,
			"x", dest.Position.X(),
			"y", dest.Position.Y(),
			"z", dest.Position.Z(),
		)
	}

	if h.useLog == nil {
		return
	}

	err := h.useLog.Record(ctx, ports.UseEntry{
		PlayerName:  event.PlayerName,
		Destination: event.Destination.Kind.String(),
		World:       dest.World,
		X:           dest.Position.X(),
		Y:           dest.Position.Y(),
		Z:           dest.Position.Z(),
		At:          event.At,
	})
	if err != nil {
		slog.Warn("failed to relay homestar use", "player", event.PlayerName, "error", err)
	}
}

func (h *UseLogEventHandler) handleTeleportCancelled(
	_ context.Context,
	event domain.TeleportCancelledEvent,
) {
	slog.Debug("homestar teleport cancelled", "player", event.PlayerID, "reason", event.Reason)
}
