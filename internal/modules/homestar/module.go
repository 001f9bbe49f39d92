package homestar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/sglre6355/homestar/internal/host"
	"github.com/sglre6355/homestar/internal/modules/homestar/application"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	"github.com/sglre6355/homestar/internal/modules/homestar/infrastructure"
	"github.com/sglre6355/homestar/internal/modules/homestar/infrastructure/sqlite"
	"github.com/sglre6355/homestar/internal/modules/homestar/presentation/discord"
	"github.com/sglre6355/homestar/internal/modules/homestar/presentation/dragonfly"
)

func init() {
	host.Register(&HomeStarModule{})
}

// Compile-time interface checks.
var (
	_ host.ConfigurableModule = (*HomeStarModule)(nil)
	_ host.PlayerModule       = (*HomeStarModule)(nil)
)

// HomeStarModule provides HomeStar teleports on the game server and a status
// command on Discord.
type HomeStarModule struct {
	config          *Config
	commandHandlers *discord.CommandHandlers
	playerHandler   *dragonfly.PlayerHandler

	scheduler *infrastructure.TimerScheduler
	particles *infrastructure.WarmupParticles
	eventBus  *infrastructure.ChannelEventBus
	homeStore *sqlite.HomeStore

	// Context for the cooldown janitor
	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *HomeStarModule) Name() string {
	return "homestar"
}

// Commands returns the slash commands for this module.
func (m *HomeStarModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *HomeStarModule) CommandHandlers() map[string]host.InteractionHandler {
	return map[string]host.InteractionHandler{
		"homestar": m.commandHandlers.HandleHomeStar,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *HomeStarModule) EventHandlers() []host.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *HomeStarModule) LoadConfig() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *HomeStarModule) Init(deps host.ModuleDependencies) error {
	if deps.Server == nil {
		return errors.New("homestar module requires a game server")
	}
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	catalog, err := infrastructure.NewCatalog(m.config.Language)
	if err != nil {
		return err
	}

	homes, err := m.openHomes()
	if err != nil {
		return err
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())

	// Create infrastructure
	clock := infrastructure.SystemClock{}
	m.scheduler = infrastructure.NewTimerScheduler()
	m.eventBus = infrastructure.NewChannelEventBus(infrastructure.DefaultEventBufferSize)

	warmups := infrastructure.NewMemoryWarmupRegistry()
	cooldowns := infrastructure.NewMemoryCooldownTracker(clock)
	messages := infrastructure.NewMemoryMessageCooldownTracker(clock)

	srv := deps.Server
	worlds := infrastructure.NewWorldSet(srv.World(), srv.Nether(), srv.End())
	executor := infrastructure.NewGameExecutor(srv, worlds)
	notifier := infrastructure.NewCatalogNotifier(catalog, messages, nil, m.config.SoundEffects)

	// Create services
	teleportDeps := usecases.TeleportDependencies{
		Warmups:      warmups,
		Cooldowns:    cooldowns,
		Messages:     messages,
		Clock:        clock,
		Scheduler:    m.scheduler,
		Executor:     executor,
		Destinations: infrastructure.NewDestinationResolver(homes, worlds, m.config.CenterOnBlock),
		Worlds:       infrastructure.NewConfigWorldPolicy(m.config.EnabledWorlds, m.config.DisabledWorlds),
		Notifier:     notifier,
		Publisher:    m.eventBus,
	}
	if m.config.ParticleEffects {
		m.particles = infrastructure.NewWarmupParticles(executor, warmups, infrastructure.DefaultParticleInterval)
		teleportDeps.Effects = m.particles
	}
	teleports := usecases.NewTeleportService(teleportDeps, m.config.TeleportSettings())
	status := usecases.NewStatusService(teleports, executor)

	// Create application event handlers
	application.NewUseLogEventHandler(m.eventBus, m.useLog(deps.Session), m.config.LogUse).Start()

	go cooldowns.RunJanitor(m.ctx, m.config.CooldownSweepInterval)

	// Create presentation handlers
	m.playerHandler = dragonfly.NewPlayerHandler(teleports, homes, notifier, worlds, dragonfly.HandlerSettings{
		LeftClick:  m.config.LeftClick,
		ShiftClick: m.config.ShiftClick,
	})
	cmd.Register(dragonfly.NewCommand(dragonfly.CommandDependencies{
		Status:    status,
		Catalog:   catalog,
		Notifier:  notifier,
		Worlds:    worlds,
		Operators: m.config.Operators,
	}))
	m.commandHandlers = discord.NewCommandHandlers(status, catalog)

	slog.Info("homestar module initialized",
		"language", catalog.Language().String(),
		"warmup", m.config.TeleportWarmup,
		"cooldown", m.config.TeleportCooldown,
		"persistent_homes", m.homeStore != nil,
	)

	return nil
}

// AttachPlayer installs the HomeStar handler on a joining player.
func (m *HomeStarModule) AttachPlayer(p *player.Player) {
	p.Handle(m.playerHandler)
}

// Shutdown cleans up module resources.
func (m *HomeStarModule) Shutdown() error {
	// Cancel context first to stop the janitor
	if m.cancel != nil {
		m.cancel()
	}

	// Stop pending warmups before the event bus goes away
	if m.scheduler != nil {
		m.scheduler.Close()
	}
	if m.particles != nil {
		m.particles.Close()
	}

	if m.eventBus != nil {
		m.eventBus.Close()
	}

	if m.homeStore != nil {
		if err := m.homeStore.Close(); err != nil {
			return fmt.Errorf("failed to close home store: %w", err)
		}
	}

	return nil
}

// openHomes opens the SQLite home store when configured.
func (m *HomeStarModule) openHomes() (domain.HomeRepository, error) {
	if m.config.HomeStorePath == "" {
		slog.Warn("HOMESTAR_HOME_STORE_PATH not set, homes are lost on restart")
		return infrastructure.NewMemoryHomeRepository(), nil
	}

	store, err := sqlite.Open(m.config.HomeStorePath)
	if err != nil {
		return nil, err
	}
	m.homeStore = store
	return store, nil
}

// useLog returns the Discord use log when a session and channel are configured.
func (m *HomeStarModule) useLog(session *discordgo.Session) ports.UseLog {
	if session == nil || m.config.UseLogChannelID == 0 {
		return nil
	}
	return infrastructure.NewDiscordUseLog(session, m.config.UseLogChannelID)
}
