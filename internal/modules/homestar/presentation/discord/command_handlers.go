package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/homestar/internal/host"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
)

// DurationFormatter renders durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// CommandHandlers holds all the command handlers.
type CommandHandlers struct {
	status    *usecases.StatusService
	durations DurationFormatter
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(status *usecases.StatusService, durations DurationFormatter) *CommandHandlers {
	return &CommandHandlers{
		status:    status,
		durations: durations,
	}
}

// HandleHomeStar handles the /homestar command.
func (h *CommandHandlers) HandleHomeStar(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r host.Responder,
) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return r.RespondError("Missing subcommand")
	}

	switch options[0].Name {
	case "status":
		return h.handleStatus(options[0].Options, r)
	default:
		return r.RespondError(fmt.Sprintf("Unknown subcommand %q", options[0].Name))
	}
}

func (h *CommandHandlers) handleStatus(
	options []*discordgo.ApplicationCommandInteractionDataOption,
	r host.Responder,
) error {
	ctx := context.Background()

	var name string
	for _, opt := range options {
		if opt.Name == "player" {
			name = opt.StringValue()
		}
	}
	if name == "" {
		return r.RespondError("Missing player")
	}

	output, err := h.status.StatusByName(ctx, usecases.StatusByNameInput{Name: name})
	if errors.Is(err, usecases.ErrPlayerNotFound) {
		return r.RespondError(fmt.Sprintf("Player **%s** is not online.", name))
	}
	if err != nil {
		return r.RespondError(err.Error())
	}

	cooldown := "Ready"
	if output.CooldownRemaining > 0 {
		cooldown = h.durations.FormatDuration(output.CooldownRemaining)
	}

	return r.RespondEmbed(&discordgo.MessageEmbed{
		Title: output.PlayerName,
		Color: host.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Teleporting",
				Value:  strconv.FormatBool(output.WarmingUp),
				Inline: true,
			},
			{
				Name:   "Cooldown",
				Value:  cooldown,
				Inline: true,
			},
			{
				Name:   "Warmup",
				Value:  h.durations.FormatDuration(output.Settings.Warmup),
				Inline: true,
			},
		},
	})
}
