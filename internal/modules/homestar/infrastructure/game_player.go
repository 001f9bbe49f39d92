package infrastructure

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// GamePlayer adapts a dragonfly player to ports.Player.
// It is only valid inside the transaction the player was obtained from.
type GamePlayer struct {
	p      *player.Player
	worlds *WorldSet
}

// NewGamePlayer wraps p.
func NewGamePlayer(p *player.Player, worlds *WorldSet) *GamePlayer {
	return &GamePlayer{p: p, worlds: worlds}
}

// ID returns the player's UUID.
func (g *GamePlayer) ID() domain.PlayerID {
	return domain.PlayerID(g.p.UUID())
}

// Name returns the player's name.
func (g *GamePlayer) Name() string {
	return g.p.Name()
}

// Location returns the player's world, position and rotation.
func (g *GamePlayer) Location() domain.Location {
	rot := g.p.Rotation()
	return domain.Location{
		World:    WorldKey(g.p.Tx().World()),
		Position: g.p.Position(),
		Yaw:      rot.Yaw(),
		Pitch:    rot.Pitch(),
	}
}

// SendMessage shows a chat message to the player.
func (g *GamePlayer) SendMessage(text string) {
	g.p.Message(text)
}

// PlaySound plays the sound to the player only.
func (g *GamePlayer) PlaySound(kind domain.SoundKind) {
	if s, ok := gameSound(kind); ok {
		g.p.PlaySound(s)
	}
}

// ConsumeHomeStar removes one HomeStar, preferring the held stacks.
func (g *GamePlayer) ConsumeHomeStar() bool {
	main, off := g.p.HeldItems()
	switch {
	case IsHomeStar(main):
		g.p.SetHeldItems(main.Grow(-1), off)
		return true
	case IsHomeStar(off):
		g.p.SetHeldItems(main, off.Grow(-1))
		return true
	}

	inv := g.p.Inventory()
	for slot, stack := range inv.Slots() {
		if IsHomeStar(stack) {
			return inv.SetItem(slot, stack.Grow(-1)) == nil
		}
	}
	return false
}

// Teleport moves the player to the location and calls arrived with the player
// on the destination's timeline. Moving to another world hands the player
// over to that world's transaction queue, so arrived runs later there.
func (g *GamePlayer) Teleport(to domain.Location, arrived func(ports.Player)) error {
	target, ok := g.worlds.ByKey(to.World)
	if !ok {
		return fmt.Errorf("unknown world %q", to.World)
	}

	tx := g.p.Tx()
	if tx.World() == target {
		g.p.Teleport(to.Position)
		if arrived != nil {
			arrived(g)
		}
		return nil
	}

	handle := g.p.H()
	tx.RemoveEntity(g.p)
	target.Exec(func(tx *world.Tx) {
		p, ok := tx.AddEntity(handle).(*player.Player)
		if !ok {
			return
		}
		p.Teleport(to.Position)
		if arrived != nil {
			arrived(NewGamePlayer(p, g.worlds))
		}
	})
	return nil
}

// RestoreHomeStar gives back one HomeStar. Returns false if the inventory has no room.
func (g *GamePlayer) RestoreHomeStar() bool {
	n, err := g.p.Inventory().AddItem(NewHomeStar(1))
	return err == nil && n == 1
}

func gameSound(kind domain.SoundKind) (world.Sound, bool) {
	switch kind {
	case domain.SoundTeleportWarmup:
		return sound.Experience{}, true
	case domain.SoundTeleportSuccess:
		return sound.Teleport{}, true
	case domain.SoundTeleportCancelled:
		return sound.FireExtinguish{}, true
	case domain.SoundDenied:
		return sound.Pop{}, true
	default:
		return nil, false
	}
}

// Ensure GamePlayer implements ports.Player.
var _ ports.Player = (*GamePlayer)(nil)
