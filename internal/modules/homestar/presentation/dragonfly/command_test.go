package dragonfly

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/usecases"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	"github.com/sglre6355/homestar/internal/modules/homestar/infrastructure"
)

func TestStatusSubstitutions(t *testing.T) {
	output := &usecases.StatusOutput{
		CooldownRemaining: 42 * time.Second,
		Settings:          usecases.TeleportSettings{Warmup: 5 * time.Second},
	}

	subs := statusSubstitutions(output, "Alex")

	if subs[domain.SubstPlayer] != "Alex" {
		t.Errorf("expected player Alex, got %v", subs[domain.SubstPlayer])
	}
	if subs[domain.SubstDuration] != 5*time.Second {
		t.Errorf("expected duration 5s, got %v", subs[domain.SubstDuration])
	}
	if subs[domain.SubstRemaining] != 42*time.Second {
		t.Errorf("expected remaining 42s, got %v", subs[domain.SubstRemaining])
	}
}

func TestStatusMessageRendering(t *testing.T) {
	catalog, err := infrastructure.NewCatalog("en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := &usecases.StatusOutput{
		CooldownRemaining: 90 * time.Second,
		Settings:          usecases.TeleportSettings{Warmup: 3 * time.Second},
	}

	got := catalog.Render(domain.MessageCommandStatus, statusSubstitutions(output, "Alex"))

	want := "Warmup: 3 seconds, cooldown left: 1 minute 30 seconds."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNewCommand(t *testing.T) {
	command := NewCommand(CommandDependencies{Operators: []string{"Alex"}})

	if command.Name() != "homestar" {
		t.Errorf("expected command name homestar, got %q", command.Name())
	}
}

func TestHelpMessages(t *testing.T) {
	tests := []struct {
		name     string
		operator bool
		want     []domain.MessageKind
	}{
		{name: "player", want: []domain.MessageKind{domain.MessageCommandHelp}},
		{
			name:     "operator",
			operator: true,
			want:     []domain.MessageKind{domain.MessageCommandHelp, domain.MessageCommandHelpGive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := helpMessages(tt.operator); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHelpMessageRendering(t *testing.T) {
	catalog, err := infrastructure.NewCatalog("en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sub := range []string{"status", "destroy", "help"} {
		if got := catalog.Render(domain.MessageCommandHelp, nil); !strings.Contains(got, "/homestar "+sub) {
			t.Errorf("expected help to list %q, got %q", sub, got)
		}
	}
	if got := catalog.Render(domain.MessageCommandHelpGive, nil); !strings.Contains(got, "/homestar give") {
		t.Errorf("expected give help, got %q", got)
	}
}

func TestCommandRunner_IsOperator(t *testing.T) {
	r := &commandRunner{operators: map[string]struct{}{"alex": {}}}

	if !r.isOperator(nil) {
		t.Error("expected non-player sources to be operators")
	}
}
