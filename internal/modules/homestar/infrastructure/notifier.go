package infrastructure

import (
	"maps"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// DefaultRepeatDelays keeps messages that a held click can trigger repeatedly
// from flooding the chat.
var DefaultRepeatDelays = map[domain.MessageKind]time.Duration{
	domain.MessageTeleportCooldown:          time.Second,
	domain.MessageTeleportFailNoBedspawn:    time.Second,
	domain.MessageTeleportFailMinDistance:   time.Second,
	domain.MessageTeleportFailWorldDisabled: time.Second,
	domain.MessageTeleportFailShiftClick:    time.Second,
}

// CatalogNotifier sends catalog messages to players, suppressing repeats.
type CatalogNotifier struct {
	catalog      *Catalog
	messages     domain.MessageCooldownTracker
	repeatDelays map[domain.MessageKind]time.Duration
	sounds       bool
}

// NewCatalogNotifier creates a new CatalogNotifier.
// A nil repeatDelays uses DefaultRepeatDelays.
func NewCatalogNotifier(
	catalog *Catalog,
	messages domain.MessageCooldownTracker,
	repeatDelays map[domain.MessageKind]time.Duration,
	sounds bool,
) *CatalogNotifier {
	if repeatDelays == nil {
		repeatDelays = DefaultRepeatDelays
	}
	return &CatalogNotifier{
		catalog:      catalog,
		messages:     messages,
		repeatDelays: repeatDelays,
		sounds:       sounds,
	}
}

// Notify renders and sends the message, then plays its sound if enabled.
func (n *CatalogNotifier) Notify(
	player ports.Player,
	kind domain.MessageKind,
	subs domain.Substitutions,
) {
	if n.messages != nil && !n.messages.ShouldShow(player.ID(), kind, n.repeatDelays[kind]) {
		return
	}

	if _, ok := subs[domain.SubstPlayer]; !ok {
		subs = maps.Clone(subs)
		if subs == nil {
			subs = domain.Substitutions{}
		}
		subs[domain.SubstPlayer] = player.Name()
	}

	player.SendMessage(n.catalog.Render(kind, subs))

	if n.sounds {
		if sound := kind.Sound(); sound != domain.SoundNone {
			player.PlaySound(sound)
		}
	}
}

// Ensure CatalogNotifier implements Notifier.
var _ ports.Notifier = (*CatalogNotifier)(nil)
