// Package engine integrates aerodynamic, propulsive and gravitational
// forces into aircraft state once per simulation tick, using semi-implicit
// Euler: velocity is advanced from acceleration first, then position from
// the updated velocity. The scheme is unconditionally stable for
// force-driven systems at the small fixed time steps a trainer uses.
//
// The engine is single-threaded and lock-free. It never returns errors:
// numerically degenerate inputs recover locally with documented fallbacks
// (spec validation and sane dt are the caller's responsibility).
package engine

import (
	"math"

	"github.com/opd-ai/go-flighttrainer/pkg/aero"
	"github.com/opd-ai/go-flighttrainer/pkg/aircraft"
	"github.com/opd-ai/go-flighttrainer/pkg/atmosphere"
	"github.com/opd-ai/go-flighttrainer/pkg/event"
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
	"github.com/opd-ai/go-flighttrainer/pkg/propulsion"
	"github.com/opd-ai/go-flighttrainer/pkg/wind"
)

const (
	// minTurnSpeed is the speed below which the coordinated-turn yaw
	// term is dropped (it divides by speed).
	minTurnSpeed = 1.0
	// fuelLowFraction of capacity triggers the low-fuel event.
	fuelLowFraction = 0.1
)

// Engine computes forces and advances one aircraft's state per tick.
type Engine struct {
	Atmosphere *atmosphere.Model
	Wind       *wind.Model
	Aero       *aero.Model
	Propulsion *propulsion.Model
	Bus        *event.Bus // optional; nil drops all events

	// Edge detection for published events.
	stalled     bool
	burnerLit   bool
	fuelLowSent bool
	fuelOutSent bool
}

// New wires an Engine over the given atmosphere, wind field and optional
// event bus.
func New(atm *atmosphere.Model, w *wind.Model, bus *event.Bus) *Engine {
	return &Engine{
		Atmosphere: atm,
		Wind:       w,
		Aero:       aero.New(atm, w),
		Propulsion: propulsion.New(atm),
		Bus:        bus,
	}
}

// Tick advances state by deltaTime seconds at the given cumulative
// simulation time. It mutates state in place and is the only writer of
// velocity, position, fuel and mass during a session.
func (e *Engine) Tick(state *aircraft.State, spec *aircraft.Spec, controls aircraft.Controls, deltaTime, simTime float64) {
	controls = controls.Clamp()
	state.Controls = controls

	e.updateOrientation(state, controls, deltaTime)
	e.burnFuel(state, spec, controls, deltaTime)

	machBefore := e.mach(state, simTime)

	gravity := physics.Vector3{Y: -atmosphere.Gravity * state.Mass}
	lift := e.Aero.ComputeLift(state, spec)
	drag := e.Aero.Drag(state, spec, simTime)
	thrust := e.thrustForce(state, spec, controls)

	dragForce := physics.Vector3{}
	if !drag.RelativeVelocity.IsZero() {
		dragForce = drag.RelativeVelocity.Normalize().Scale(-drag.Total)
	}

	net := gravity.Add(lift.Force).Add(dragForce).Add(thrust)
	acceleration := net.Scale(1 / state.Mass)

	// Semi-implicit Euler: velocity first, position from the updated
	// velocity.
	state.Velocity = state.Velocity.Add(acceleration.Scale(deltaTime))
	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))

	e.publishEvents(state, spec, lift, machBefore, simTime)
}

// updateOrientation applies the simplified kinematic link from the
// controls snapshot: pitch and roll are set directly, yaw advances by the
// commanded rate plus the coordinated-turn contribution from roll.
func (e *Engine) updateOrientation(state *aircraft.State, controls aircraft.Controls, deltaTime float64) {
	state.Pitch = controls.Pitch
	state.Roll = controls.Roll

	yawRate := controls.YawRate
	speed := state.Speed()
	if speed > minTurnSpeed && math.Abs(math.Cos(state.Roll)) > 0.1 {
		yawRate += atmosphere.Gravity * math.Tan(state.Roll) / speed
	}
	state.Yaw = wrapAngle(state.Yaw + yawRate*deltaTime)
}

// burnFuel decrements fuel at the spec burn rate scaled by throttle, the
// afterburner rate when lit, and keeps mass consistent.
func (e *Engine) burnFuel(state *aircraft.State, spec *aircraft.Spec, controls aircraft.Controls, deltaTime float64) {
	if state.Fuel <= 0 {
		return
	}
	rate := spec.FuelBurn * math.Min(controls.Throttle, 1)
	if controls.Afterburner() && state.Afterburner {
		rate = spec.AfterburnerBurn
	}
	state.Fuel = math.Max(0, state.Fuel-rate*deltaTime)
	state.Mass = spec.EmptyMass + state.Fuel
}

// thrustForce converts the throttle fraction to a percent command and
// cuts thrust entirely once fuel is exhausted.
func (e *Engine) thrustForce(state *aircraft.State, spec *aircraft.Spec, controls aircraft.Controls) physics.Vector3 {
	if state.Fuel <= 0 {
		return physics.Vector3{}
	}
	return e.Propulsion.ThrustForce(spec, state, controls.Throttle*100)
}

// mach returns the wind-relative Mach number at the aircraft's altitude.
func (e *Engine) mach(state *aircraft.State, simTime float64) float64 {
	relative := state.Velocity.Sub(e.Wind.Vector(state.Altitude(), simTime))
	return relative.Length() / e.Atmosphere.SpeedOfSound(state.Altitude())
}

// publishEvents emits envelope and powerplant edge events on the bus.
func (e *Engine) publishEvents(state *aircraft.State, spec *aircraft.Spec, lift aero.Lift, machBefore, simTime float64) {
	machAfter := e.mach(state, simTime)
	emit := func(t event.Type) {
		e.Bus.Publish(event.NewFlightEvent(t, e, simTime, state.Altitude(), machAfter, state.Fuel))
	}

	if lift.Limited != e.stalled {
		e.stalled = lift.Limited
		if e.stalled {
			emit(event.StallWarning)
		} else {
			emit(event.StallRecovered)
		}
	}

	if machBefore < 1 && machAfter >= 1 {
		emit(event.MachCrossedUp)
	} else if machBefore >= 1 && machAfter < 1 {
		emit(event.MachCrossedDown)
	}

	if lit := state.Controls.Afterburner() && state.Afterburner && state.Fuel > 0; lit != e.burnerLit {
		e.burnerLit = lit
		if lit {
			emit(event.AfterburnerEngaged)
		} else {
			emit(event.AfterburnerDisengaged)
		}
	}

	if !e.fuelLowSent && spec.FuelCapacity > 0 && state.Fuel <= spec.FuelCapacity*fuelLowFraction && state.Fuel > 0 {
		e.fuelLowSent = true
		emit(event.FuelLow)
	}
	if !e.fuelOutSent && state.Fuel <= 0 {
		e.fuelOutSent = true
		emit(event.FuelExhausted)
	}
}

// Parameters assembles the read-only snapshot for the rendering and
// telemetry collaborators. Every derived value is recomputed from the
// current state; nothing is cached between calls.
func (e *Engine) Parameters(state *aircraft.State, spec *aircraft.Spec, tick uint64, simTime float64) FlightParameters {
	altitude := state.Altitude()
	windVec := e.Wind.Vector(altitude, simTime)
	drag := e.Aero.Drag(state, spec, simTime)
	lift := e.Aero.ComputeLift(state, spec)

	tas := drag.RelativeSpeed
	ias := tas * math.Sqrt(e.Atmosphere.DensityRatio(altitude))
	mach := tas / e.Atmosphere.SpeedOfSound(altitude)

	percent := state.Controls.Throttle * 100
	expectedBase := spec.Thrust
	if state.Controls.Afterburner() && state.Afterburner {
		expectedBase = spec.AfterburnerThrust
	}
	expected := expectedBase * math.Min(percent, 100) / 100
	actual := 0.0
	if state.Fuel > 0 {
		actual = e.Propulsion.Thrust(spec, state, percent)
	}

	gravity := physics.Vector3{Y: -atmosphere.Gravity * state.Mass}
	dragForce := physics.Vector3{}
	if !drag.RelativeVelocity.IsZero() {
		dragForce = drag.RelativeVelocity.Normalize().Scale(-drag.Total)
	}
	thrust := e.thrustForce(state, spec, state.Controls)
	net := gravity.Add(lift.Force).Add(dragForce).Add(thrust)

	return FlightParameters{
		SimTime:           simTime,
		Tick:              tick,
		Position:          state.Position,
		Velocity:          state.Velocity,
		Yaw:               state.Yaw,
		Pitch:             state.Pitch,
		Roll:              state.Roll,
		TrueAirspeed:      tas,
		IndicatedAirspeed: ias,
		Mach:              mach,
		AngleOfAttack:     e.Aero.AngleOfAttack(state),
		Lift:              lift.Force.Length(),
		LiftCoefficient:   lift.Coefficient,
		Stalled:           lift.Limited,
		ThrustExpected:    expected,
		ThrustActual:      actual,
		DragParasitic:     drag.Parasitic,
		DragInduced:       drag.Induced,
		DragWave:          drag.Wave,
		DragTotal:         drag.Total,
		NetForce:          net,
		WindVelocity:      windVec,
		RelativeVelocity:  drag.RelativeVelocity,
		RelativeSpeed:     drag.RelativeSpeed,
		Fuel:              state.Fuel,
		Mass:              state.Mass,
		Throttle:          state.Controls.Throttle,
		Afterburner:       state.Controls.Afterburner() && state.Afterburner,
	}
}

// wrapAngle keeps an angle in (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
