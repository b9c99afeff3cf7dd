// pkg/aircraft/state.go
package aircraft

import (
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

// State is the mutable flight state of one simulated aircraft. It is
// created once at session start and mutated each tick by the integration
// engine; the controls collaborator only touches the Controls snapshot.
// Position.Y is altitude in meters. All orientation angles are radians.
type State struct {
	Position    physics.Vector3 // m, Y = altitude
	Velocity    physics.Vector3 // m/s
	Yaw         float64         // radians
	Pitch       float64         // radians
	Roll        float64         // radians
	Fuel        float64         // kg remaining
	Mass        float64         // kg, empty mass + fuel
	Afterburner bool            // afterburner equipped
	Controls    Controls        // latest snapshot

	// LiftAxis is the most recent valid lift direction, kept so the
	// aerodynamics model has a fallback when the velocity and up vectors
	// degenerate (e.g. straight vertical flight).
	LiftAxis physics.Vector3
}

// Starting conditions. Altitude must be positive and the cruise velocity
// nonzero so the first tick's trig and normalization never degenerate.
const (
	defaultStartAltitude = 2000  // m
	defaultCruiseSpeed   = 150.0 // m/s
)

// NewState creates the session-start state for the given spec: full fuel,
// forward cruise velocity along +X, positive starting altitude.
func NewState(spec *Spec) *State {
	return NewStateAt(spec, defaultStartAltitude, defaultCruiseSpeed)
}

// NewStateAt creates a session-start state at a chosen altitude and
// forward speed. Non-positive values fall back to the defaults to keep
// the no-degenerate-start invariant.
func NewStateAt(spec *Spec, altitude, speed float64) *State {
	if altitude <= 0 {
		altitude = defaultStartAltitude
	}
	if speed <= 0 {
		speed = defaultCruiseSpeed
	}
	return &State{
		Position:    physics.Vector3{Y: altitude},
		Velocity:    physics.Vector3{X: speed},
		Fuel:        spec.FuelCapacity,
		Mass:        spec.EmptyMass + spec.FuelCapacity,
		Afterburner: spec.HasAfterburner(),
		LiftAxis:    physics.Vector3{Y: 1},
	}
}

// Altitude returns the current altitude in meters.
func (s *State) Altitude() float64 {
	return s.Position.Y
}

// Speed returns the current ground-relative speed in m/s.
func (s *State) Speed() float64 {
	return s.Velocity.Length()
}
