// Package wind provides a procedural wind field. The field is a pure
// function of altitude and simulation time: a base wind along the +X axis
// that strengthens slowly with altitude, with sinusoidal gust terms
// superimposed on both horizontal components. Holding no state keeps
// replays and tests deterministic.
package wind

import (
	"math"

	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

// Model describes the procedural wind field.
type Model struct {
	// BaseSpeed is the sea-level wind speed along +X in m/s.
	BaseSpeed float64
	// AltitudeGain adds BaseSpeed·AltitudeGain per 1000 m of altitude.
	AltitudeGain float64
	// GustAmplitude is the peak gust speed in m/s.
	GustAmplitude float64
	// GustFrequency is the gust angular frequency in rad/s.
	GustFrequency float64
}

// Default returns moderate low-turbulence conditions.
func Default() *Model {
	return &Model{
		BaseSpeed:     5,
		AltitudeGain:  0.1,
		GustAmplitude: 1.5,
		GustFrequency: 0.3,
	}
}

// Calm returns a field with no wind at all.
func Calm() *Model {
	return &Model{}
}

// Vector returns the wind velocity in m/s at the given altitude (m) and
// simulation time (s). Calls with identical arguments return identical
// results.
func (m *Model) Vector(altitude, simTime float64) physics.Vector3 {
	if altitude < 0 {
		altitude = 0
	}
	base := m.BaseSpeed * (1 + m.AltitudeGain*altitude/1000)
	phase := m.GustFrequency * simTime
	return physics.Vector3{
		X: base + m.GustAmplitude*math.Sin(phase),
		Z: m.GustAmplitude * math.Cos(phase),
	}
}
