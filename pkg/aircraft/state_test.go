// pkg/aircraft/state_test.go
package aircraft

import (
	"math"
	"testing"

	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

func testSpec(t *testing.T) *Spec {
	t.Helper()
	spec, err := ParseSpecRecord(fighterRecord)
	if err != nil {
		t.Fatal(err)
	}
	return spec
}

func TestNewState(t *testing.T) {
	spec := testSpec(t)
	state := NewState(spec)

	if state.Position.Y <= 0 {
		t.Errorf("starting altitude = %v, must be positive", state.Position.Y)
	}
	if state.Velocity.Length() == 0 {
		t.Error("starting velocity must be nonzero")
	}
	if state.Fuel != spec.FuelCapacity {
		t.Errorf("Fuel = %v, expected full tanks %v", state.Fuel, spec.FuelCapacity)
	}
	if want := spec.EmptyMass + spec.FuelCapacity; state.Mass != want {
		t.Errorf("Mass = %v, expected %v", state.Mass, want)
	}
	if !state.Afterburner {
		t.Error("Afterburner flag should follow the spec")
	}
	if state.LiftAxis != (physics.Vector3{Y: 1}) {
		t.Errorf("LiftAxis = %v, expected world up", state.LiftAxis)
	}
}

func TestNewStateAt(t *testing.T) {
	spec := testSpec(t)

	t.Run("custom_start", func(t *testing.T) {
		state := NewStateAt(spec, 5000, 220)
		if state.Altitude() != 5000 {
			t.Errorf("Altitude() = %v, expected 5000", state.Altitude())
		}
		if state.Speed() != 220 {
			t.Errorf("Speed() = %v, expected 220", state.Speed())
		}
	})

	t.Run("degenerate_inputs_fall_back", func(t *testing.T) {
		state := NewStateAt(spec, 0, -10)
		if state.Altitude() <= 0 {
			t.Error("zero starting altitude must be replaced by a positive default")
		}
		if state.Speed() <= 0 {
			t.Error("non-positive starting speed must be replaced by a positive default")
		}
	})
}

func TestControls_Afterburner(t *testing.T) {
	tests := []struct {
		name     string
		throttle float64
		expected bool
	}{
		{name: "idle", throttle: 0, expected: false},
		{name: "full_military", throttle: 1.0, expected: false},
		{name: "war_emergency", throttle: 1.01, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Controls{Throttle: tt.throttle}
			if got := c.Afterburner(); got != tt.expected {
				t.Errorf("Afterburner() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestControls_Clamp(t *testing.T) {
	c := Controls{Throttle: 2.5, Pitch: math.Pi, Roll: -10}.Clamp()
	if c.Throttle != MaxThrottle {
		t.Errorf("Throttle = %v, expected clamp at %v", c.Throttle, MaxThrottle)
	}
	if c.Pitch != math.Pi/2 {
		t.Errorf("Pitch = %v, expected clamp at pi/2", c.Pitch)
	}
	if c.Roll != -math.Pi {
		t.Errorf("Roll = %v, expected clamp at -pi", c.Roll)
	}

	negative := Controls{Throttle: -0.3}.Clamp()
	if negative.Throttle != 0 {
		t.Errorf("Throttle = %v, expected clamp at 0", negative.Throttle)
	}
}

func TestControls_FromDegrees(t *testing.T) {
	c := FromDegrees(0.8, 90, -180, 45)
	if math.Abs(c.Pitch-math.Pi/2) > 1e-12 {
		t.Errorf("Pitch = %v, expected pi/2", c.Pitch)
	}
	if math.Abs(c.Roll+math.Pi) > 1e-12 {
		t.Errorf("Roll = %v, expected -pi", c.Roll)
	}
	if math.Abs(c.YawRate-math.Pi/4) > 1e-12 {
		t.Errorf("YawRate = %v, expected pi/4", c.YawRate)
	}
	if c.Throttle != 0.8 {
		t.Errorf("Throttle = %v, expected passthrough 0.8", c.Throttle)
	}
}
