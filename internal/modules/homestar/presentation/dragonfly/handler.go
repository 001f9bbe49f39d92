package dragonfly

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	"github.com/sglre6355/homestar/internal/modules/homestar/infrastructure"
)

// HandlerSettings controls which clicks use a HomeStar.
type HandlerSettings struct {
	LeftClick  bool // left clicks use the item as well as right clicks
	ShiftClick bool // the player must sneak to use the item
}

// PlayerHandler forwards dragonfly player events to the teleport use cases.
// One handler is shared by all players.
type PlayerHandler struct {
	player.NopHandler

	teleports *usecases.TeleportService
	homes     domain.HomeRepository
	notifier  ports.Notifier
	worlds    *infrastructure.WorldSet
	settings  HandlerSettings
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(
	teleports *usecases.TeleportService,
	homes domain.HomeRepository,
	notifier ports.Notifier,
	worlds *infrastructure.WorldSet,
	settings HandlerSettings,
) *PlayerHandler {
	return &PlayerHandler{
		teleports: teleports,
		homes:     homes,
		notifier:  notifier,
		worlds:    worlds,
		settings:  settings,
	}
}

// click describes a player click that may use a HomeStar.
type click struct {
	holdingHomeStar bool
	sneaking        bool
	left            bool
}

func (h *PlayerHandler) wrap(p *player.Player) *infrastructure.GamePlayer {
	return infrastructure.NewGamePlayer(p, h.worlds)
}

func clickOf(p *player.Player, left bool) click {
	main, _ := p.HeldItems()
	return click{
		holdingHomeStar: infrastructure.IsHomeStar(main),
		sneaking:        p.Sneaking(),
		left:            left,
	}
}

// HandleItemUse handles right clicks in the air.
func (h *PlayerHandler) HandleItemUse(ctx *player.Context) {
	p := ctx.Val()
	if h.onUse(h.wrap(p), clickOf(p, false)) {
		ctx.Cancel()
	}
}

// HandleItemUseOnBlock handles right clicks on blocks.
func (h *PlayerHandler) HandleItemUseOnBlock(
	ctx *player.Context,
	pos cube.Pos,
	_ cube.Face,
	_ mgl64.Vec3,
) {
	p := ctx.Val()
	gp := h.wrap(p)
	c := clickOf(p, false)

	if isBed(p.Tx().Block(pos)) {
		h.onBedUse(gp, domain.Location{
			World:    infrastructure.WorldKey(p.Tx().World()),
			Position: pos.Side(cube.FaceUp).Vec3Middle(),
		})
		// Bed clicks set the home and never use the item.
		c.holdingHomeStar = false
	}

	if h.onBlockClick(gp, c) {
		ctx.Cancel()
	}
}

// HandleStartBreak handles left clicks on blocks.
func (h *PlayerHandler) HandleStartBreak(ctx *player.Context, _ cube.Pos) {
	p := ctx.Val()
	if h.onBlockClick(h.wrap(p), clickOf(p, true)) {
		ctx.Cancel()
	}
}

// HandlePunchAir handles left clicks in the air.
func (h *PlayerHandler) HandlePunchAir(ctx *player.Context) {
	p := ctx.Val()
	if h.onUse(h.wrap(p), clickOf(p, true)) {
		ctx.Cancel()
	}
}

// HandleMove cancels the warmup when the player changes position.
// Turning the head alone does not count.
func (h *PlayerHandler) HandleMove(ctx *player.Context, newPos mgl64.Vec3, _ cube.Rotation) {
	p := ctx.Val()
	h.onMove(h.wrap(p), p.Position(), newPos)
}

// HandleHurt cancels the warmup when the player takes damage.
func (h *PlayerHandler) HandleHurt(
	ctx *player.Context,
	_ *float64,
	_ bool,
	_ *time.Duration,
	_ world.DamageSource,
) {
	h.teleports.Cancel(h.wrap(ctx.Val()), domain.CancelDamage)
}

// HandleAttackEntity cancels the warmup when the player deals damage.
func (h *PlayerHandler) HandleAttackEntity(
	ctx *player.Context,
	_ world.Entity,
	_, _ *float64,
	_ *bool,
) {
	h.teleports.Cancel(h.wrap(ctx.Val()), domain.CancelDamage)
}

// HandleDeath cancels the warmup silently.
func (h *PlayerHandler) HandleDeath(p *player.Player, _ world.DamageSource, _ *bool) {
	h.teleports.Cancel(h.wrap(p), domain.CancelDeath)
}

// HandleQuit cancels the warmup silently and forgets message history.
func (h *PlayerHandler) HandleQuit(p *player.Player) {
	h.teleports.Cancel(h.wrap(p), domain.CancelQuit)
}

// onUse starts a teleport for a click with a HomeStar in hand.
// Returns true if the click was consumed.
func (h *PlayerHandler) onUse(p ports.Player, c click) bool {
	if !c.holdingHomeStar {
		return false
	}
	if c.left && !h.settings.LeftClick {
		return false
	}
	if h.settings.ShiftClick && !c.sneaking {
		h.notifier.Notify(p, domain.MessageTeleportFailShiftClick, nil)
		return true
	}

	_, err := h.teleports.RequestTeleport(context.Background(), p)
	switch {
	case err == nil:
	case errors.Is(err, usecases.ErrSchedulerUnavailable):
		slog.Error("failed to start homestar teleport", "player", p.ID(), "error", err)
	default:
		slog.Debug("homestar use rejected", "player", p.ID(), "error", err)
	}
	return true
}

// onBlockClick cancels a running warmup, or uses the HomeStar otherwise.
// Returns true if the click was consumed.
func (h *PlayerHandler) onBlockClick(p ports.Player, c click) bool {
	if h.teleports.IsWarmingUp(p.ID()) {
		h.teleports.Cancel(p, domain.CancelInteraction)
		return c.holdingHomeStar
	}
	return h.onUse(p, c)
}

// onMove cancels the warmup if the position changed.
// Rotation-only moves report the same position.
func (h *PlayerHandler) onMove(p ports.Player, from, to mgl64.Vec3) {
	if from == to {
		return
	}
	h.teleports.Cancel(p, domain.CancelMovement)
}

// onBedUse records the bed as the player's home.
func (h *PlayerHandler) onBedUse(p ports.Player, home domain.Location) {
	if err := h.homes.Save(context.Background(), p.ID(), home); err != nil {
		slog.Error("failed to save home", "player", p.ID(), "error", err)
		return
	}
	h.notifier.Notify(p, domain.MessageHomeSet, nil)
}

// isBed reports whether b is a bed. Beds are matched by block ID since the
// server keeps them as generic block states.
func isBed(b world.Block) bool {
	if b == nil {
		return false
	}
	name, _ := b.EncodeBlock()
	return name == "minecraft:bed"
}
