package domain

import "time"

// TeleportCompletedEvent is published after a player arrived at the destination.
type TeleportCompletedEvent struct {
	PlayerID    PlayerID
	PlayerName  string
	Origin      Location
	Destination Destination
	At          time.Time
}

// TeleportCancelledEvent is published when a warmup was cancelled.
type TeleportCancelledEvent struct {
	PlayerID PlayerID
	Reason   CancelReason
	At       time.Time
}
