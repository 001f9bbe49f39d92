package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
)

// Embed colors.
const (
	colorUseLog = 0x9B59B6
)

// EmbedSender is the subset of *discordgo.Session used to post embeds.
type EmbedSender interface {
	ChannelMessageSendEmbed(
		channelID string,
		embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// DiscordUseLog relays completed HomeStar uses to a Discord channel.
type DiscordUseLog struct {
	sender    EmbedSender
	channelID snowflake.ID
}

// NewDiscordUseLog creates a new DiscordUseLog.
func NewDiscordUseLog(sender EmbedSender, channelID snowflake.ID) *DiscordUseLog {
	return &DiscordUseLog{
		sender:    sender,
		channelID: channelID,
	}
}

// Record posts the use as an embed.
func (l *DiscordUseLog) Record(ctx context.Context, entry ports.UseEntry) error {
	embed := &discordgo.MessageEmbed{
		Title:       "HomeStar used",
		Description: fmt.Sprintf("**%s** teleported to %s.", entry.PlayerName, entry.Destination),
		Color:       colorUseLog,
		Timestamp:   entry.At.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "World",
				Value:  entry.World,
				Inline: true,
			},
			{
				Name:   "Position",
				Value:  fmt.Sprintf("%.0f, %.0f, %.0f", entry.X, entry.Y, entry.Z),
				Inline: true,
			},
		},
	}

	if _, err := l.sender.ChannelMessageSendEmbed(
		l.channelID.String(),
		embed,
		discordgo.WithContext(ctx),
	); err != nil {
		return fmt.Errorf("failed to relay use to channel %s: %w", l.channelID, err)
	}
	return nil
}

// Ensure DiscordUseLog implements ports.UseLog.
var _ ports.UseLog = (*DiscordUseLog)(nil)
