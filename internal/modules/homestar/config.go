package homestar

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// envPrefix scopes module settings in the environment.
const envPrefix = "HOMESTAR_"

// Config holds the homestar module configuration.
type Config struct {
	Language string `env:"LANGUAGE" envDefault:"en-US"`

	TeleportWarmup   time.Duration `env:"TELEPORT_WARMUP"   envDefault:"5s"`
	TeleportCooldown time.Duration `env:"TELEPORT_COOLDOWN" envDefault:"60s"`
	MinimumDistance  float64       `env:"MINIMUM_DISTANCE"  envDefault:"10"`

	CancelOnDamage      bool          `env:"CANCEL_ON_DAMAGE"      envDefault:"true"`
	CancelOnMovement    bool          `env:"CANCEL_ON_MOVEMENT"    envDefault:"true"`
	CancelOnInteraction bool          `env:"CANCEL_ON_INTERACTION" envDefault:"true"`
	InteractionGrace    time.Duration `env:"INTERACTION_GRACE"     envDefault:"100ms"`

	BedspawnFallback    bool                 `env:"BEDSPAWN_FALLBACK"     envDefault:"true"`
	RemoveFromInventory domain.RemovalPolicy `env:"REMOVE_FROM_INVENTORY" envDefault:"on-success"`
	CenterOnBlock       bool                 `env:"CENTER_ON_BLOCK"       envDefault:"true"`

	LeftClick       bool `env:"LEFT_CLICK"       envDefault:"false"`
	ShiftClick      bool `env:"SHIFT_CLICK"      envDefault:"false"`
	SoundEffects    bool `env:"SOUND_EFFECTS"    envDefault:"true"`
	ParticleEffects bool `env:"PARTICLE_EFFECTS" envDefault:"true"`
	LogUse          bool `env:"LOG_USE"          envDefault:"true"`

	EnabledWorlds  []string `env:"ENABLED_WORLDS"  envSeparator:","`
	DisabledWorlds []string `env:"DISABLED_WORLDS" envSeparator:","`
	Operators      []string `env:"OPERATORS"       envSeparator:","`

	// HomeStorePath enables the SQLite home store. Homes are kept in memory when empty.
	HomeStorePath string `env:"HOME_STORE_PATH"`

	// UseLogChannelID enables relaying uses to Discord when set.
	UseLogChannelID snowflake.ID `env:"USE_LOG_CHANNEL_ID"`

	CooldownSweepInterval time.Duration `env:"COOLDOWN_SWEEP_INTERVAL" envDefault:"5m"`
}

// LoadConfig parses the module configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	err := env.ParseWithOptions(cfg, env.Options{
		Prefix: envPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(snowflake.ID(0)): func(value string) (any, error) {
				return snowflake.Parse(value)
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.TeleportWarmup < 0 {
		errs = append(errs, fmt.Errorf("%sTELEPORT_WARMUP must not be negative", envPrefix))
	}
	if c.TeleportCooldown < 0 {
		errs = append(errs, fmt.Errorf("%sTELEPORT_COOLDOWN must not be negative", envPrefix))
	}
	if c.MinimumDistance < 0 {
		errs = append(errs, fmt.Errorf("%sMINIMUM_DISTANCE must not be negative", envPrefix))
	}
	if c.InteractionGrace < 0 {
		errs = append(errs, fmt.Errorf("%sINTERACTION_GRACE must not be negative", envPrefix))
	}
	if c.CooldownSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%sCOOLDOWN_SWEEP_INTERVAL must be positive", envPrefix))
	}

	return errors.Join(errs...)
}

// TeleportSettings returns the snapshot the teleport use cases work with.
func (c *Config) TeleportSettings() usecases.TeleportSettings {
	return usecases.TeleportSettings{
		Warmup:              c.TeleportWarmup,
		Cooldown:            c.TeleportCooldown,
		MinimumDistance:     c.MinimumDistance,
		CancelOnDamage:      c.CancelOnDamage,
		CancelOnMovement:    c.CancelOnMovement,
		CancelOnInteraction: c.CancelOnInteraction,
		InteractionGrace:    c.InteractionGrace,
		BedspawnFallback:    c.BedspawnFallback,
		Removal:             c.RemoveFromInventory,
	}
}
