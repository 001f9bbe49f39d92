package domain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func TestParsePlayerID(t *testing.T) {
	raw := "5f0c7a3e-8a8c-4b1e-9a57-3f1d2b6c9e10"

	id, err := ParsePlayerID(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != raw {
		t.Errorf("expected %q, got %q", raw, id.String())
	}
	if id.UUID() != uuid.MustParse(raw) {
		t.Error("expected UUID to round trip")
	}
}

func TestParsePlayerID_Invalid(t *testing.T) {
	if _, err := ParsePlayerID("steve"); err == nil {
		t.Error("expected error for non-UUID input, got nil")
	}
}

func TestLocation_Distance(t *testing.T) {
	a := Location{World: "world", Position: mgl64.Vec3{0, 64, 0}}
	b := Location{World: "world", Position: mgl64.Vec3{3, 64, 4}}

	if got := a.Distance(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("expected distance 5, got %v", got)
	}
}

func TestLocation_SameWorld(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "same world", a: "world", b: "world", want: true},
		{name: "different world", a: "world", b: "nether", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Location{World: tt.a}.SameWorld(Location{World: tt.b})
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLocation_Centered(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{name: "positive", in: mgl64.Vec3{10.9, 70, 3.1}, want: mgl64.Vec3{10.5, 70, 3.5}},
		{name: "negative", in: mgl64.Vec3{-0.2, 12, -7.8}, want: mgl64.Vec3{-0.5, 12, -7.5}},
		{name: "already centered", in: mgl64.Vec3{1.5, 5, 1.5}, want: mgl64.Vec3{1.5, 5, 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Location{World: "world", Position: tt.in, Yaw: 90}
			got := loc.Centered()
			if got.Position != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got.Position)
			}
			if got.Yaw != 90 || got.World != "world" {
				t.Error("expected world and rotation to be preserved")
			}
		})
	}
}
