package domain

// MessageKind identifies a player notification.
type MessageKind string

const (
	MessageTeleportCooldown             MessageKind = "teleport-cooldown"
	MessageTeleportWarmup               MessageKind = "teleport-warmup"
	MessageTeleportSuccess              MessageKind = "teleport-success"
	MessageTeleportFailNoBedspawn       MessageKind = "teleport-fail-no-bedspawn"
	MessageTeleportFailMinDistance      MessageKind = "teleport-fail-min-distance"
	MessageTeleportFailWorldDisabled    MessageKind = "teleport-fail-world-disabled"
	MessageTeleportFailShiftClick       MessageKind = "teleport-fail-shift-click"
	MessageTeleportCancelledInteraction MessageKind = "teleport-cancelled-interaction"
	MessageTeleportCancelledDamage      MessageKind = "teleport-cancelled-damage"
	MessageTeleportCancelledMovement    MessageKind = "teleport-cancelled-movement"
	MessageTeleportCancelledNoItem      MessageKind = "teleport-cancelled-no-item"
	MessageHomeSet                      MessageKind = "home-set"
	MessageCommandGive                  MessageKind = "command-give"
	MessageCommandDestroy               MessageKind = "command-destroy"
	MessageCommandStatus                MessageKind = "command-status"
	MessageCommandFailNoItem            MessageKind = "command-fail-no-item"
	MessageCommandFailPlayerNotFound    MessageKind = "command-fail-player-not-found"
	MessageCommandHelp                  MessageKind = "command-help"
	MessageCommandHelpGive              MessageKind = "command-help-give"
)

// Sound returns the sound effect that accompanies the message.
func (k MessageKind) Sound() SoundKind {
	switch k {
	case MessageTeleportWarmup:
		return SoundTeleportWarmup
	case MessageTeleportSuccess:
		return SoundTeleportSuccess
	case MessageTeleportCancelledInteraction,
		MessageTeleportCancelledDamage,
		MessageTeleportCancelledMovement,
		MessageTeleportCancelledNoItem:
		return SoundTeleportCancelled
	case MessageTeleportFailNoBedspawn,
		MessageTeleportFailMinDistance,
		MessageTeleportFailWorldDisabled,
		MessageTeleportCooldown,
		MessageCommandFailNoItem,
		MessageCommandFailPlayerNotFound:
		return SoundDenied
	default:
		return SoundNone
	}
}

// SoundKind identifies a sound effect independent of the host's sound catalog.
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundTeleportWarmup
	SoundTeleportSuccess
	SoundTeleportCancelled
	SoundDenied
)

// Substitution keys understood by message templates.
const (
	SubstPlayer      = "player"
	SubstDestination = "destination"
	SubstDuration    = "duration"
	SubstRemaining   = "remaining"
	SubstWorld       = "world"
	SubstQuantity    = "quantity"
)

// Substitutions maps placeholder names to their values.
type Substitutions map[string]any
