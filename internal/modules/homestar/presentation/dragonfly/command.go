package dragonfly

import (
	"context"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	"github.com/sglre6355/homestar/internal/modules/homestar/infrastructure"
)

// maxGiveAmount is the size of a full nether star stack.
const maxGiveAmount = 64

// CommandDependencies groups the collaborators of the /homestar command.
type CommandDependencies struct {
	Status    *usecases.StatusService
	Catalog   *infrastructure.Catalog
	Notifier  ports.Notifier
	Worlds    *infrastructure.WorldSet
	Operators []string // player names allowed to give HomeStars; the console always is
}

// NewCommand builds the /homestar command.
func NewCommand(deps CommandDependencies) cmd.Command {
	r := &commandRunner{
		deps:      deps,
		operators: make(map[string]struct{}, len(deps.Operators)),
	}
	for _, name := range deps.Operators {
		r.operators[strings.ToLower(name)] = struct{}{}
	}

	return cmd.New("homestar", "Show HomeStar status and manage HomeStars.", nil,
		statusCommand{runner: r},
		giveCommand{runner: r},
		destroyCommand{runner: r},
		helpCommand{runner: r},
	)
}

type commandRunner struct {
	deps      CommandDependencies
	operators map[string]struct{}
}

// reply sends a catalog message to the command source. Players get it
// through the notifier so sounds apply.
func (r *commandRunner) reply(
	src cmd.Source,
	o *cmd.Output,
	kind domain.MessageKind,
	subs domain.Substitutions,
) {
	if p, ok := src.(*player.Player); ok {
		r.deps.Notifier.Notify(infrastructure.NewGamePlayer(p, r.deps.Worlds), kind, subs)
		return
	}
	o.Print(r.deps.Catalog.Render(kind, subs))
}

func (r *commandRunner) isOperator(src cmd.Source) bool {
	p, ok := src.(*player.Player)
	if !ok {
		return true
	}
	_, ok = r.operators[strings.ToLower(p.Name())]
	return ok
}

func statusSubstitutions(output *usecases.StatusOutput, name string) domain.Substitutions {
	return domain.Substitutions{
		domain.SubstPlayer:    name,
		domain.SubstDuration:  output.Settings.Warmup,
		domain.SubstRemaining: output.CooldownRemaining,
	}
}

type statusCommand struct {
	runner *commandRunner

	Status  cmd.SubCommand             `cmd:"status"`
	Targets cmd.Optional[[]cmd.Target] `cmd:"player"`
}

// Run reports the status of the targets, or of the source itself.
func (c statusCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	targets, ok := c.Targets.Load()
	if !ok {
		p, isPlayer := src.(*player.Player)
		if !isPlayer {
			o.Error("A player must be specified when running from the console.")
			return
		}
		targets = []cmd.Target{p}
	}

	for _, target := range targets {
		p, ok := target.(*player.Player)
		if !ok {
			continue
		}
		output := c.runner.deps.Status.Status(context.Background(), usecases.StatusInput{
			PlayerID: domain.PlayerID(p.UUID()),
		})
		c.runner.reply(src, o, domain.MessageCommandStatus, statusSubstitutions(output, p.Name()))
	}
}

type giveCommand struct {
	runner *commandRunner

	Give    cmd.SubCommand    `cmd:"give"`
	Targets []cmd.Target      `cmd:"player"`
	Amount  cmd.Optional[int] `cmd:"amount"`
}

// Allow restricts giving to the console and operators.
func (c giveCommand) Allow(src cmd.Source) bool {
	return c.runner.isOperator(src)
}

// Run adds HomeStars to the inventory of every target player.
func (c giveCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	amount, ok := c.Amount.Load()
	if !ok {
		amount = 1
	}
	if amount < 1 || amount > maxGiveAmount {
		o.Errorf("Amount must be between 1 and %d.", maxGiveAmount)
		return
	}

	for _, target := range c.Targets {
		p, ok := target.(*player.Player)
		if !ok {
			continue
		}
		added, err := p.Inventory().AddItem(infrastructure.NewHomeStar(amount))
		if err != nil {
			o.Errorf("Inventory of %s is full, %d HomeStar(s) not given.", p.Name(), amount-added)
		}
		if added == 0 {
			continue
		}
		c.runner.reply(src, o, domain.MessageCommandGive, domain.Substitutions{
			domain.SubstPlayer:   p.Name(),
			domain.SubstQuantity: added,
		})
	}
}

type destroyCommand struct {
	runner *commandRunner

	Destroy cmd.SubCommand `cmd:"destroy"`
}

// Allow restricts destroying to players, who hold the item.
func (destroyCommand) Allow(src cmd.Source) bool {
	_, ok := src.(*player.Player)
	return ok
}

// Run destroys the HomeStar stack in the player's main hand.
func (c destroyCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p := src.(*player.Player)

	held, offHand := p.HeldItems()
	if !infrastructure.IsHomeStar(held) {
		c.runner.reply(src, o, domain.MessageCommandFailNoItem, nil)
		return
	}

	p.SetHeldItems(item.Stack{}, offHand)
	c.runner.reply(src, o, domain.MessageCommandDestroy, domain.Substitutions{
		domain.SubstQuantity: held.Count(),
	})
}

type helpCommand struct {
	runner *commandRunner

	Help cmd.SubCommand `cmd:"help"`
}

// Run lists the subcommands the source may run.
func (c helpCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	for _, kind := range helpMessages(c.runner.isOperator(src)) {
		c.runner.reply(src, o, kind, nil)
	}
}

func helpMessages(operator bool) []domain.MessageKind {
	if operator {
		return []domain.MessageKind{domain.MessageCommandHelp, domain.MessageCommandHelpGive}
	}
	return []domain.MessageKind{domain.MessageCommandHelp}
}
