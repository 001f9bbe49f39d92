package usecases

import (
	"context"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// StatusInput contains the input for the Status use case.
type StatusInput struct {
	PlayerID domain.PlayerID
}

// StatusByNameInput contains the input for the StatusByName use case.
type StatusByNameInput struct {
	Name string
}

// StatusOutput contains the result of the Status use cases.
type StatusOutput struct {
	PlayerID          domain.PlayerID
	PlayerName        string // empty when looked up by ID
	WarmingUp         bool
	CooldownRemaining time.Duration // whole seconds
	Settings          TeleportSettings
}

// StatusService reports the HomeStar state of players.
type StatusService struct {
	teleports *TeleportService
	lookup    ports.PlayerLookup
}

// NewStatusService creates a new StatusService.
func NewStatusService(teleports *TeleportService, lookup ports.PlayerLookup) *StatusService {
	return &StatusService{
		teleports: teleports,
		lookup:    lookup,
	}
}

// Status returns the state of the given player.
func (s *StatusService) Status(_ context.Context, input StatusInput) *StatusOutput {
	return &StatusOutput{
		PlayerID:          input.PlayerID,
		WarmingUp:         s.teleports.IsWarmingUp(input.PlayerID),
		CooldownRemaining: time.Duration(s.teleports.RemainingCooldownSeconds(input.PlayerID)) * time.Second,
		Settings:          s.teleports.Settings(),
	}
}

// StatusByName returns the state of an online player looked up by name.
func (s *StatusService) StatusByName(ctx context.Context, input StatusByNameInput) (*StatusOutput, error) {
	if s.lookup == nil {
		return nil, ErrPlayerNotFound
	}

	player, ok := s.lookup.PlayerByName(input.Name)
	if !ok {
		return nil, ErrPlayerNotFound
	}

	output := s.Status(ctx, StatusInput{PlayerID: player.ID})
	output.PlayerName = player.Name
	return output, nil
}
