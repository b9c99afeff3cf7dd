// pkg/engine/params.go
package engine

import (
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

// FlightParameters is the read-only per-tick snapshot handed to the
// rendering and telemetry collaborators. It is a plain value: copying it
// is the supported way to move it across goroutines, and nothing in it
// points back into live engine state.
type FlightParameters struct {
	SimTime float64 `json:"simTime"`
	Tick    uint64  `json:"tick"`

	Position physics.Vector3 `json:"position"`
	Velocity physics.Vector3 `json:"velocity"`
	Yaw      float64         `json:"yaw"`
	Pitch    float64         `json:"pitch"`
	Roll     float64         `json:"roll"`

	TrueAirspeed      float64 `json:"trueAirspeed"`      // m/s
	IndicatedAirspeed float64 `json:"indicatedAirspeed"` // m/s
	Mach              float64 `json:"mach"`

	AngleOfAttack   float64 `json:"angleOfAttack"` // radians
	Lift            float64 `json:"lift"`          // N
	LiftCoefficient float64 `json:"liftCoefficient"`
	Stalled         bool    `json:"stalled"`

	ThrustExpected float64 `json:"thrustExpected"` // N, commanded at sea level
	ThrustActual   float64 `json:"thrustActual"`   // N, after derate and clamp

	DragParasitic float64 `json:"dragParasitic"` // N
	DragInduced   float64 `json:"dragInduced"`   // N
	DragWave      float64 `json:"dragWave"`      // N
	DragTotal     float64 `json:"dragTotal"`     // N

	NetForce physics.Vector3 `json:"netForce"` // N

	WindVelocity     physics.Vector3 `json:"windVelocity"`     // m/s
	RelativeVelocity physics.Vector3 `json:"relativeVelocity"` // m/s
	RelativeSpeed    float64         `json:"relativeSpeed"`    // m/s

	Fuel        float64 `json:"fuel"` // kg
	Mass        float64 `json:"mass"` // kg
	Throttle    float64 `json:"throttle"`
	Afterburner bool    `json:"afterburner"`
}

// Altitude returns the snapshot's altitude in meters.
func (p FlightParameters) Altitude() float64 {
	return p.Position.Y
}
