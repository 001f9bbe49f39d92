package domain

import (
	"fmt"
	"strings"
)

// RemovalPolicy decides when a used HomeStar leaves the inventory.
type RemovalPolicy int

const (
	RemoveOnSuccess RemovalPolicy = iota // consumed on arrival
	RemoveOnUse                          // consumed when the warmup starts
)

// String returns the configuration form of the policy.
func (p RemovalPolicy) String() string {
	switch p {
	case RemoveOnUse:
		return "on-use"
	default:
		return "on-success"
	}
}

// ParseRemovalPolicy converts a configuration value to a RemovalPolicy.
func ParseRemovalPolicy(s string) (RemovalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on-use":
		return RemoveOnUse, nil
	case "on-success", "":
		return RemoveOnSuccess, nil
	default:
		return RemoveOnSuccess, fmt.Errorf("unknown removal policy %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for env parsing.
func (p *RemovalPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseRemovalPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
