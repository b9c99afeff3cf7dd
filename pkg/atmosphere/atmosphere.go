// Package atmosphere implements the International Standard Atmosphere as
// pure functions of altitude. Below the tropopause temperature falls
// linearly with a fixed lapse rate; above it temperature is held constant
// and pressure decays exponentially. Density follows from the ideal-gas
// relation, so it is continuous across the tropopause and monotonically
// decreasing with altitude.
//
// All functions are total: altitudes outside the modeled range are clamped
// to the nearest boundary instead of producing an error.
package atmosphere

import "math"

// Sea-level ISA reference values and physical constants.
const (
	SeaLevelTemperature = 288.15  // K
	SeaLevelPressure    = 101325  // Pa
	SeaLevelDensity     = 1.225   // kg/m³
	LapseRate           = 0.0065  // K/m below the tropopause
	GasConstant         = 287.05  // J/(kg·K), specific gas constant of air
	HeatCapacityRatio   = 1.4     // γ for diatomic air
	Gravity             = 9.80665 // m/s²
)

// Model evaluates ISA properties. The zero value is not usable; construct
// with New.
type Model struct {
	tropopause float64
	maxAlt     float64
}

// New returns a Model with the standard 11 km tropopause.
func New() *Model {
	return NewWithTropopause(11000)
}

// NewWithTropopause returns a Model with a custom tropopause altitude in
// meters. Values at or below zero fall back to the standard 11 km.
func NewWithTropopause(tropopause float64) *Model {
	if tropopause <= 0 {
		tropopause = 11000
	}
	return &Model{
		tropopause: tropopause,
		// The isothermal layer is extrapolated well past any service
		// ceiling; beyond this the exponential is clamped.
		maxAlt: 80000,
	}
}

// clampAltitude keeps altitude inside the modeled range. Negative
// altitudes (below the reference geoid) clamp to sea level.
func (m *Model) clampAltitude(altitude float64) float64 {
	if altitude < 0 || math.IsNaN(altitude) {
		return 0
	}
	if altitude > m.maxAlt {
		return m.maxAlt
	}
	return altitude
}

// Temperature returns the static air temperature in kelvin at the given
// altitude in meters.
func (m *Model) Temperature(altitude float64) float64 {
	altitude = m.clampAltitude(altitude)
	if altitude >= m.tropopause {
		return SeaLevelTemperature - LapseRate*m.tropopause
	}
	return SeaLevelTemperature - LapseRate*altitude
}

// Pressure returns the static pressure in pascals at the given altitude in
// meters.
func (m *Model) Pressure(altitude float64) float64 {
	altitude = m.clampAltitude(altitude)
	tropoTemp := SeaLevelTemperature - LapseRate*m.tropopause
	if altitude < m.tropopause {
		// Barometric power law of the temperature ratio.
		ratio := m.Temperature(altitude) / SeaLevelTemperature
		return SeaLevelPressure * math.Pow(ratio, Gravity/(LapseRate*GasConstant))
	}
	tropoRatio := tropoTemp / SeaLevelTemperature
	tropoPressure := SeaLevelPressure * math.Pow(tropoRatio, Gravity/(LapseRate*GasConstant))
	// Isothermal layer: exponential decay above the tropopause.
	return tropoPressure * math.Exp(-Gravity*(altitude-m.tropopause)/(GasConstant*tropoTemp))
}

// Density returns the air density in kg/m³ at the given altitude in
// meters, from the ideal-gas relation p = ρRT.
func (m *Model) Density(altitude float64) float64 {
	return m.Pressure(altitude) / (GasConstant * m.Temperature(altitude))
}

// SpeedOfSound returns the local speed of sound in m/s at the given
// altitude in meters.
func (m *Model) SpeedOfSound(altitude float64) float64 {
	return math.Sqrt(HeatCapacityRatio * GasConstant * m.Temperature(altitude))
}

// DensityRatio returns density at altitude divided by sea-level density.
// Used by propulsion for thrust derate and by reporting for the IAS/TAS
// conversion.
func (m *Model) DensityRatio(altitude float64) float64 {
	return m.Density(altitude) / SeaLevelDensity
}
