package ports

import (
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// Notifier delivers localized messages to players.
type Notifier interface {
	// Notify renders the message kind with the substitutions and sends it to
	// the player, unless it was shown too recently.
	Notify(player Player, kind domain.MessageKind, subs domain.Substitutions)
}
