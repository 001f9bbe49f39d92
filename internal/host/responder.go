package host

import "github.com/bwmarrin/discordgo"

// Embed colors shared by interaction responses.
const (
	ColorSuccess = 0x08c404
	ColorWarning = 0xFFFF00
	ColorError   = 0xE74C3C
)

// Responder answers Discord interactions. Handlers depend on it instead of
// the session so they can be tested without a live connection.
type Responder interface {
	// Respond sends a raw response to the interaction.
	Respond(response *discordgo.InteractionResponse) error

	// RespondEmbed answers with a single embed visible to the channel.
	RespondEmbed(embed *discordgo.MessageEmbed) error

	// RespondError answers with an error embed only the invoking user sees.
	RespondError(message string) error
}

// EmbedResponse wraps embed in a channel message response.
func EmbedResponse(embed *discordgo.MessageEmbed) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

// ErrorResponse builds an ephemeral error embed response.
func ErrorResponse(message string) *discordgo.InteractionResponse {
	response := EmbedResponse(&discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       ColorError,
	})
	response.Data.Flags = discordgo.MessageFlagsEphemeral
	return response
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends a response to the interaction via Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	return r.session.InteractionRespond(r.interaction, response)
}

// RespondEmbed sends embed as the interaction response.
func (r *DiscordResponder) RespondEmbed(embed *discordgo.MessageEmbed) error {
	return r.Respond(EmbedResponse(embed))
}

// RespondError sends an ephemeral error embed as the interaction response.
func (r *DiscordResponder) RespondError(message string) error {
	return r.Respond(ErrorResponse(message))
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	LastResponse *discordgo.InteractionResponse
	Err          error
}

// Respond records the response for testing.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.LastResponse = response
	return m.Err
}

// RespondEmbed records the embed response for testing.
func (m *MockResponder) RespondEmbed(embed *discordgo.MessageEmbed) error {
	return m.Respond(EmbedResponse(embed))
}

// RespondError records the error response for testing.
func (m *MockResponder) RespondError(message string) error {
	return m.Respond(ErrorResponse(message))
}

// LastEmbed returns the first embed of the last response, or nil.
func (m *MockResponder) LastEmbed() *discordgo.MessageEmbed {
	if m.LastResponse == nil || m.LastResponse.Data == nil || len(m.LastResponse.Data.Embeds) == 0 {
		return nil
	}
	return m.LastResponse.Data.Embeds[0]
}

var (
	_ Responder = (*DiscordResponder)(nil)
	_ Responder = (*MockResponder)(nil)
)
