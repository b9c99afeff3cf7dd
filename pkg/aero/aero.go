// Package aero computes angle of attack, lift and the three drag
// components for a point-mass aircraft. Lift runs in load-factor mode: the
// lift coefficient is back-solved so lift balances weight under the
// current bank and climb geometry, then clamped to the thin-airfoil
// ceiling so slow flight stalls instead of producing unbounded Cl. Drag
// opposes the wind-relative velocity, which is why the wind model is a
// dependency here.
//
// Every computation is a pure function of the arguments; nothing is
// cached between calls. Near-zero speeds and degenerate cross products
// short-circuit to documented fallbacks instead of dividing by zero.
package aero

import (
	"math"

	"github.com/opd-ai/go-flighttrainer/pkg/aircraft"
	"github.com/opd-ai/go-flighttrainer/pkg/atmosphere"
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
	"github.com/opd-ai/go-flighttrainer/pkg/wind"
)

const (
	// OswaldEfficiency corrects induced drag for non-ideal lift
	// distribution.
	OswaldEfficiency = 0.8
	// DragDivergenceMach is the onset of wave drag.
	DragDivergenceMach = 0.85

	// Mach band boundaries for the parasitic drag rise. Each band's
	// quadratic is anchored at its own onset so Cd stays continuous
	// across the boundaries.
	transonicOnset  = 0.8
	supersonicOnset = 1.2

	subsonicDragFactor   = 0.02
	transonicDragFactor  = 0.9
	supersonicDragFactor = 2.5
	waveDragFactor       = 18.0

	// minSpeed is the zero-speed guard: below this every aerodynamic
	// quantity is zero rather than NaN.
	minSpeed = 1e-6
	// minInducedSpeed is the floor below which induced drag is zeroed;
	// the back-solved Cl grows as 1/V² and would blow the term up.
	minInducedSpeed = 20.0
)

// Model evaluates aerodynamic forces using an atmosphere and a wind field.
type Model struct {
	Atmosphere *atmosphere.Model
	Wind       *wind.Model
}

// New returns a Model over the given atmosphere and wind field.
func New(atm *atmosphere.Model, w *wind.Model) *Model {
	return &Model{Atmosphere: atm, Wind: w}
}

// Lift describes the computed lift at one instant.
type Lift struct {
	Force       physics.Vector3 // N
	Coefficient float64
	// Limited reports that the back-solved coefficient hit the stall
	// ceiling; the aircraft cannot hold level flight at this speed.
	Limited bool
}

// DragBreakdown splits total drag into its three contributions.
type DragBreakdown struct {
	Parasitic        float64         // N
	Induced          float64         // N
	Wave             float64         // N
	Total            float64         // N
	RelativeVelocity physics.Vector3 // m/s, aircraft velocity minus wind
	RelativeSpeed    float64         // m/s
}

// AngleOfAttack returns the angle between the aircraft's pitch attitude
// and its flight path, in radians. Zero at negligible speed.
func (m *Model) AngleOfAttack(state *aircraft.State) float64 {
	if state.Velocity.Length() < minSpeed {
		return 0
	}
	flightPath := math.Atan2(state.Velocity.Y, state.Velocity.Horizontal())
	return state.Pitch - flightPath
}

// LiftForce returns the lift force vector in newtons. See ComputeLift for
// the full breakdown.
func (m *Model) LiftForce(state *aircraft.State, spec *aircraft.Spec) physics.Vector3 {
	return m.ComputeLift(state, spec).Force
}

// ComputeLift computes the lift force, coefficient and stall-limit flag.
// The lift axis is the double cross product of velocity and the
// aircraft's up vector; when the two are near-parallel the previous valid
// axis on the state is reused instead of normalizing a zero vector.
func (m *Model) ComputeLift(state *aircraft.State, spec *aircraft.Spec) Lift {
	speed := state.Velocity.Length()
	if speed < minSpeed {
		return Lift{}
	}

	density := m.Atmosphere.Density(state.Altitude())
	cl, limited := m.liftCoefficient(state, spec, density, speed)

	up := physics.UpAxis(state.Yaw, state.Pitch, state.Roll)
	intermediate := state.Velocity.Cross(up)
	axis := state.LiftAxis
	if !intermediate.IsZero() {
		candidate := intermediate.Cross(state.Velocity)
		if !candidate.IsZero() {
			axis = candidate.Normalize()
			state.LiftAxis = axis
		}
	}

	magnitude := 0.5 * density * speed * speed * spec.WingArea * cl
	return Lift{
		Force:       axis.Scale(magnitude),
		Coefficient: cl,
		Limited:     limited,
	}
}

// liftCoefficient back-solves Cl so lift balances weight along the
// current flight-path angle, with the 1/cos(roll) load-factor adjustment
// while banked. The result is clamped to ±2π·maxAoA, the thin-airfoil
// stall ceiling.
func (m *Model) liftCoefficient(state *aircraft.State, spec *aircraft.Spec, density, speed float64) (float64, bool) {
	q := 0.5 * density * speed * speed * spec.WingArea
	if q < minSpeed {
		return 0, false
	}

	flightPath := math.Atan2(state.Velocity.Y, state.Velocity.Horizontal())
	cl := state.Mass * atmosphere.Gravity * math.Cos(flightPath) / q

	if bank := math.Cos(state.Roll); math.Abs(bank) > 0.1 {
		cl /= math.Abs(bank)
	} else {
		// Knife-edge flight: the wing cannot hold the aircraft up at
		// all, treat as fully limited.
		return m.maxLiftCoefficient(spec), true
	}

	if ceiling := m.maxLiftCoefficient(spec); cl > ceiling {
		return ceiling, true
	}
	return cl, false
}

// maxLiftCoefficient is the thin-airfoil ceiling 2π·maxAoA.
func (m *Model) maxLiftCoefficient(spec *aircraft.Spec) float64 {
	return 2 * math.Pi * spec.MaxAoA
}

// Drag computes the three drag components against the wind-relative
// velocity at the given simulation time.
func (m *Model) Drag(state *aircraft.State, spec *aircraft.Spec, simTime float64) DragBreakdown {
	relative := state.Velocity.Sub(m.Wind.Vector(state.Altitude(), simTime))
	speed := relative.Length()
	if speed < minSpeed {
		return DragBreakdown{RelativeVelocity: relative}
	}

	altitude := state.Altitude()
	density := m.Atmosphere.Density(altitude)
	mach := speed / m.Atmosphere.SpeedOfSound(altitude)
	q := 0.5 * density * speed * speed * spec.WingArea

	parasitic := q * m.parasiticCoefficient(spec, speed, mach)

	var induced float64
	if speed >= minInducedSpeed {
		cl, _ := m.liftCoefficient(state, spec, density, speed)
		induced = q * cl * cl / (math.Pi * OswaldEfficiency * spec.AspectRatio())
	}

	var wave float64
	if mach > DragDivergenceMach {
		excess := mach - DragDivergenceMach
		wave = q * waveDragFactor * excess * excess
	}

	return DragBreakdown{
		Parasitic:        parasitic,
		Induced:          induced,
		Wave:             wave,
		Total:            parasitic + induced + wave,
		RelativeVelocity: relative,
		RelativeSpeed:    speed,
	}
}

// parasiticCoefficient returns the Mach-banded parasitic drag
// coefficient. The transonic and supersonic quadratics are cumulative and
// anchored at their onset Mach, which keeps Cd continuous through the
// drag-rise "sound barrier" hump.
func (m *Model) parasiticCoefficient(spec *aircraft.Spec, speed, mach float64) float64 {
	cd := spec.Cd0
	if vmax := spec.MaxSpeedMS(); vmax > 0 {
		ratio := speed / vmax
		cd += subsonicDragFactor * ratio * ratio
	}
	if mach >= transonicOnset {
		excess := mach - transonicOnset
		cd += transonicDragFactor * excess * excess
	}
	if mach >= supersonicOnset {
		excess := mach - supersonicOnset
		cd += supersonicDragFactor * excess * excess
	}
	return cd
}
