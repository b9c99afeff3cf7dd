// Package propulsion computes net engine thrust for a point-mass
// aircraft: afterburner selection above 100% command, derate with air
// density, linear throttle scaling, a ram-recovery boost with Mach, and a
// final clamp at the selected thrust figure.
package propulsion

import (
	"math"

	"github.com/opd-ai/go-flighttrainer/pkg/aircraft"
	"github.com/opd-ai/go-flighttrainer/pkg/atmosphere"
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

// ramRecoveryFactor scales the Mach-proportional intake-pressure boost.
const ramRecoveryFactor = 0.25

// Model evaluates thrust using atmospheric density at the aircraft's
// altitude.
type Model struct {
	Atmosphere *atmosphere.Model
}

// New returns a Model over the given atmosphere.
func New(atm *atmosphere.Model) *Model {
	return &Model{Atmosphere: atm}
}

// Thrust returns the net thrust magnitude in newtons for a throttle
// command in percent. Commands above 100 select the afterburner figure
// (when equipped) and are clamped back to 100 for the scaling step. The
// result never exceeds the selected base figure.
func (m *Model) Thrust(spec *aircraft.Spec, state *aircraft.State, percentControl float64) float64 {
	if percentControl <= 0 {
		return 0
	}

	base := spec.Thrust
	if percentControl > 100 {
		if state.Afterburner && spec.HasAfterburner() {
			base = spec.AfterburnerThrust
		}
		percentControl = 100
	}

	// Defensive only: the ISA model cannot actually return a zero
	// sea-level density.
	if atmosphere.SeaLevelDensity < 1e-9 {
		return 0
	}

	altitude := state.Altitude()
	thrust := base * m.Atmosphere.DensityRatio(altitude) * percentControl / 100

	// Ram recovery: intake pressure rises with Mach.
	mach := state.Speed() / m.Atmosphere.SpeedOfSound(altitude)
	thrust *= 1 + ramRecoveryFactor*mach

	return math.Min(thrust, base)
}

// ThrustForce returns the thrust vector oriented along the aircraft's
// pitch/yaw-derived forward axis.
func (m *Model) ThrustForce(spec *aircraft.Spec, state *aircraft.State, percentControl float64) physics.Vector3 {
	magnitude := m.Thrust(spec, state, percentControl)
	if magnitude == 0 {
		return physics.Vector3{}
	}
	return physics.ForwardAxis(state.Yaw, state.Pitch).Scale(magnitude)
}
