package infrastructure

import (
	"strings"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
)

// ConfigWorldPolicy enables worlds from allow and deny lists.
// Entries are either a WorldKey such as "world/nether" or a bare dimension
// name that matches that dimension of every level.
// An empty allow list enables every world not denied.
type ConfigWorldPolicy struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

// NewConfigWorldPolicy creates a new ConfigWorldPolicy. World names are case-insensitive.
func NewConfigWorldPolicy(enabled, disabled []string) *ConfigWorldPolicy {
	return &ConfigWorldPolicy{
		enabled:  worldSet(enabled),
		disabled: worldSet(disabled),
	}
}

// Enabled reports whether HomeStars work in the world with the given WorldKey.
func (p *ConfigWorldPolicy) Enabled(world string) bool {
	if matches(p.disabled, world) {
		return false
	}
	return len(p.enabled) == 0 || matches(p.enabled, world)
}

func matches(set map[string]struct{}, world string) bool {
	key := strings.ToLower(world)
	if _, ok := set[key]; ok {
		return true
	}
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		_, ok := set[key[i+1:]]
		return ok
	}
	return false
}

func worldSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

// Ensure ConfigWorldPolicy implements ports.WorldPolicy.
var _ ports.WorldPolicy = (*ConfigWorldPolicy)(nil)
