package host

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the host configuration loaded from environment variables.
type Config struct {
	// DiscordToken enables the Discord companion bot when set.
	DiscordToken string     `env:"DISCORD_TOKEN"`
	LogLevel     slog.Level `env:"LOG_LEVEL"      envDefault:"INFO"`

	ServerName    string `env:"SERVER_NAME"    envDefault:"HomeStar"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":19132"`
	WorldFolder   string `env:"WORLD_FOLDER"   envDefault:"world"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether a Discord session should be opened.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
