// pkg/engine/session.go
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/opd-ai/go-flighttrainer/pkg/aircraft"
	"github.com/opd-ai/go-flighttrainer/pkg/logging"
)

// ControlSource is the seam to the input collaborator: it supplies one
// Controls snapshot per tick. Implementations must not retain or mutate
// engine state.
type ControlSource interface {
	Controls(simTime float64) aircraft.Controls
}

// FixedTrim is a ControlSource holding constant control settings, used by
// demos and tests.
type FixedTrim struct {
	Settings aircraft.Controls
}

// Controls implements ControlSource.
func (f FixedTrim) Controls(float64) aircraft.Controls {
	return f.Settings
}

// Session owns one aircraft's simulation: the engine, the mutable state,
// tick bookkeeping, and the control source. It is driven by an external
// fixed-or-variable-timestep loop calling Step; it spawns no goroutines
// and holds no locks, so every read of the state must happen between
// Step calls (or through the value snapshot Step returns).
type Session struct {
	ID       string
	Engine   *Engine
	Spec     *aircraft.Spec
	State    *aircraft.State
	Source   ControlSource
	TimeStep float64 // seconds per tick

	CurrentTick uint64
	SimTime     float64

	logger *logging.Logger
}

// NewSession creates a session for the given spec with a fresh
// session-start state.
func NewSession(eng *Engine, spec *aircraft.Spec, source ControlSource, timeStep float64, logger *logging.Logger) *Session {
	if timeStep <= 0 {
		timeStep = 1.0 / 60.0
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if source == nil {
		source = FixedTrim{}
	}
	return &Session{
		ID:       uuid.NewString(),
		Engine:   eng,
		Spec:     spec,
		State:    aircraft.NewState(spec),
		Source:   source,
		TimeStep: timeStep,
		logger:   logger,
	}
}

// Context returns a context tagged with this session's ID for logging.
func (s *Session) Context(parent context.Context) context.Context {
	return logging.WithSessionID(parent, s.ID)
}

// Step advances the simulation by one fixed time step and returns the
// resulting snapshot. Simulation time is monotonically increasing; there
// is no pause concept at this layer.
func (s *Session) Step() FlightParameters {
	controls := s.Source.Controls(s.SimTime)
	s.Engine.Tick(s.State, s.Spec, controls, s.TimeStep, s.SimTime)
	s.CurrentTick++
	s.SimTime += s.TimeStep
	return s.Engine.Parameters(s.State, s.Spec, s.CurrentTick, s.SimTime)
}

// Snapshot assembles the current FlightParameters without advancing time.
func (s *Session) Snapshot() FlightParameters {
	return s.Engine.Parameters(s.State, s.Spec, s.CurrentTick, s.SimTime)
}

// LogState writes a one-line tick summary at debug level.
func (s *Session) LogState(ctx context.Context) {
	p := s.Snapshot()
	s.logger.Debug(s.Context(ctx), "tick",
		"tick", p.Tick,
		"altitude_m", p.Altitude(),
		"tas_ms", p.TrueAirspeed,
		"mach", p.Mach,
		"fuel_kg", p.Fuel,
	)
}
