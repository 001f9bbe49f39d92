package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/df-mc/dragonfly/server"
	"github.com/sglre6355/homestar/internal/host"
	_ "github.com/sglre6355/homestar/internal/modules/homestar"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/homestar
var version = "dev"

func main() {
	// Configure JSON logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load configuration
	cfg, err := host.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	slog.Info("starting homestar", "version", version)

	// Create game server
	userConf := server.DefaultConfig()
	userConf.Server.Name = cfg.ServerName
	userConf.Network.Address = cfg.ServerAddress
	userConf.World.Folder = cfg.WorldFolder

	serverConf, err := userConf.Config(logger)
	if err != nil {
		slog.Error("failed to build server config", "error", err)
		os.Exit(1)
	}
	srv := serverConf.New()

	// Create and configure host
	h := host.NewHost(cfg, srv)
	h.LoadModules()

	// Start host
	if err := h.Start(); err != nil {
		slog.Error("failed to start host", "error", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("received termination signal, shutting down")
	if err := h.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed host shutdown")
	os.Exit(0)
}
