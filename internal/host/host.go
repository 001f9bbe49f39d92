package host

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/bwmarrin/discordgo"
	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/player"
)

// Host manages the game server, the optional Discord bot and module lifecycle.
type Host struct {
	config   *Config
	server   *server.Server
	session  *discordgo.Session
	modules  []Module
	players  []PlayerModule
	handlers map[string]InteractionHandler
	accepted chan struct{}
}

// NewHost creates a new Host serving the given game server.
func NewHost(cfg *Config, srv *server.Server) *Host {
	return &Host{
		config:   cfg,
		server:   srv,
		modules:  make([]Module, 0),
		handlers: make(map[string]InteractionHandler),
	}
}

// LoadModules loads modules from the global registry.
func (h *Host) LoadModules() {
	h.modules = Modules()
}

// Start initializes modules, connects to Discord when enabled and starts
// accepting players.
func (h *Host) Start() error {
	if h.config.DiscordEnabled() {
		session, err := discordgo.New("Bot " + h.config.DiscordToken)
		if err != nil {
			return fmt.Errorf("failed to create Discord session: %w", err)
		}
		h.session = session
	}

	if err := h.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	if h.session != nil {
		if err := h.startDiscord(); err != nil {
			return err
		}
	} else {
		slog.Info("discord disabled, DISCORD_TOKEN not set")
	}

	h.server.Listen()
	h.accepted = make(chan struct{})
	go h.acceptPlayers()

	slog.Info("started game server", "address", h.config.ServerAddress)

	return nil
}

// Stop gracefully shuts down the host.
func (h *Host) Stop() error {
	// Server first so quit handlers still reach live modules
	if h.server != nil && h.accepted != nil {
		if err := h.server.Close(); err != nil {
			slog.Warn("failed to close game server", "error", err)
		}
		<-h.accepted
	}

	for _, mod := range h.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	if h.session != nil {
		return h.session.Close()
	}

	return nil
}

func (h *Host) startDiscord() error {
	h.buildHandlerMap()

	h.session.AddHandler(h.handleInteraction)

	h.registerEventHandlers()

	if err := h.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := h.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("started discord bot",
		"user_id", h.session.State.User.ID,
		"username", h.session.State.User.Username,
	)

	return nil
}

// initModules configures and initializes all loaded modules.
func (h *Host) initModules() error {
	deps := ModuleDependencies{
		Session: h.session,
		Server:  h.server,
	}

	h.players = h.players[:0]
	for _, mod := range h.modules {
		if configurable, ok := mod.(ConfigurableModule); ok {
			if err := configurable.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
			}
		}
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		if pm, ok := mod.(PlayerModule); ok {
			h.players = append(h.players, pm)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(h.modules))
	for i, mod := range h.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// acceptPlayers hands every joining player to the player modules until the
// server closes.
func (h *Host) acceptPlayers() {
	defer close(h.accepted)

	for p := range h.server.Accept() {
		h.attachPlayer(p)
	}
}

func (h *Host) attachPlayer(p *player.Player) {
	for _, pm := range h.players {
		pm.AttachPlayer(p)
	}
}

// buildHandlerMap builds the command name to handler mapping.
func (h *Host) buildHandlerMap() {
	for _, mod := range h.modules {
		maps.Copy(h.handlers, mod.CommandHandlers())
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (h *Host) registerEventHandlers() {
	for _, mod := range h.modules {
		for _, handler := range mod.EventHandlers() {
			h.session.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (h *Host) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range h.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands registers all module commands with Discord.
func (h *Host) registerCommands() error {
	commands := h.collectCommands()

	for _, cmd := range commands {
		_, err := h.session.ApplicationCommandCreate(
			h.session.State.User.ID,
			"", // Empty string registers commands globally
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		slog.Debug("registered command", "command", cmd.Name)
	}

	return nil
}

// handleInteraction routes incoming interactions to the appropriate handler.
func (h *Host) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	responder := NewDiscordResponder(s, i.Interaction)

	cmdName := i.ApplicationCommandData().Name
	handler, ok := h.handlers[cmdName]
	if !ok {
		slog.Warn("found no handler for command", "command", cmdName)
		err := responder.RespondEmbed(&discordgo.MessageEmbed{
			Title:       "Unknown Command",
			Description: "This command is not recognized.",
			Color:       ColorWarning,
		})
		if err != nil {
			slog.Error("failed to send embed response", "error", err)
		}
		return
	}

	if err := handler(s, i, responder); err != nil {
		slog.Error("failed to handle command", "command", cmdName, "error", err)
		if err := responder.RespondError("An error occurred while processing your command."); err != nil {
			slog.Error("failed to send error response", "error", err)
		}
	}
}
