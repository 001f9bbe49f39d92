package homestar

import (
	"testing"

	"github.com/sglre6355/homestar/internal/host"
)

func TestHomeStarModule_Name(t *testing.T) {
	m := &HomeStarModule{}

	if m.Name() != "homestar" {
		t.Errorf("expected name %q, got %q", "homestar", m.Name())
	}
}

func TestHomeStarModule_Commands(t *testing.T) {
	m := &HomeStarModule{}

	commands := m.Commands()
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}
	if commands[0].Name != "homestar" {
		t.Errorf("expected command %q, got %q", "homestar", commands[0].Name)
	}
}

func TestHomeStarModule_InitRequiresServer(t *testing.T) {
	m := &HomeStarModule{}

	if err := m.Init(host.ModuleDependencies{}); err == nil {
		t.Error("expected error without a game server, got nil")
	}
}

func TestHomeStarModule_ShutdownBeforeInit(t *testing.T) {
	m := &HomeStarModule{}

	if err := m.Shutdown(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHomeStarModule_RegistersItself(t *testing.T) {
	for _, mod := range host.Modules() {
		if mod.Name() == "homestar" {
			return
		}
	}
	t.Error("expected homestar module in the global registry")
}
