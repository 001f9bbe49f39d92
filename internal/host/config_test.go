package host

import (
	"log/slog"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DiscordEnabled() {
		t.Error("expected Discord to be disabled without a token")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected log level %v, got %v", slog.LevelInfo, cfg.LogLevel)
	}
	if cfg.ServerAddress != ":19132" {
		t.Errorf("expected address %q, got %q", ":19132", cfg.ServerAddress)
	}
}

func TestLoadConfig_WithToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token-123")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DiscordToken != "test-token-123" {
		t.Errorf("expected token %q, got %q", "test-token-123", cfg.DiscordToken)
	}
	if !cfg.DiscordEnabled() {
		t.Error("expected Discord to be enabled")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected log level %v, got %v", slog.LevelDebug, cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "LOUD")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid log level, got nil")
	}
}
