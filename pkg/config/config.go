// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// SimConfig contains configuration for a trainer session.
type SimConfig struct {
	TickRate      float64         `json:"tickRate"`      // ticks per second
	StartAltitude float64         `json:"startAltitude"` // m
	StartSpeed    float64         `json:"startSpeed"`    // m/s
	Wind          WindConfig      `json:"wind"`
	Telemetry     TelemetryConfig `json:"telemetry"`
}

// WindConfig tunes the procedural wind field.
type WindConfig struct {
	BaseSpeed     float64 `json:"baseSpeed"`     // m/s along +X at sea level
	AltitudeGain  float64 `json:"altitudeGain"`  // fraction per 1000 m
	GustAmplitude float64 `json:"gustAmplitude"` // m/s
	GustFrequency float64 `json:"gustFrequency"` // rad/s
}

// TelemetryConfig contains the telemetry surfaces' settings.
type TelemetryConfig struct {
	Addr         string        `json:"addr"`         // HTTP listen address, empty disables
	CollectorURL string        `json:"collectorURL"` // push target, empty disables
	PushInterval time.Duration `json:"pushInterval"` // between pushes
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default trainer configuration
func DefaultConfig() *SimConfig {
	return &SimConfig{
		TickRate:      60,
		StartAltitude: 2000,
		StartSpeed:    150,
		Wind: WindConfig{
			BaseSpeed:     5,
			AltitudeGain:  0.1,
			GustAmplitude: 1.5,
			GustFrequency: 0.3,
		},
		Telemetry: TelemetryConfig{
			Addr:         ":8086",
			PushInterval: 5 * time.Second,
		},
	}
}

// ApplyEnvironmentOverrides overlays FLIGHTSIM_* environment variables
// onto a loaded configuration. Unset variables leave the file values
// untouched.
func ApplyEnvironmentOverrides(config *SimConfig) error {
	if err := overrideFloat("FLIGHTSIM_TICK_RATE", &config.TickRate); err != nil {
		return err
	}
	if err := overrideFloat("FLIGHTSIM_START_ALTITUDE", &config.StartAltitude); err != nil {
		return err
	}
	if err := overrideFloat("FLIGHTSIM_START_SPEED", &config.StartSpeed); err != nil {
		return err
	}
	if err := overrideFloat("FLIGHTSIM_WIND_BASE_SPEED", &config.Wind.BaseSpeed); err != nil {
		return err
	}
	if err := overrideFloat("FLIGHTSIM_WIND_GUST_AMPLITUDE", &config.Wind.GustAmplitude); err != nil {
		return err
	}
	if v := os.Getenv("FLIGHTSIM_TELEMETRY_ADDR"); v != "" {
		config.Telemetry.Addr = v
	}
	if v := os.Getenv("FLIGHTSIM_COLLECTOR_URL"); v != "" {
		config.Telemetry.CollectorURL = v
	}
	if v := os.Getenv("FLIGHTSIM_PUSH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FLIGHTSIM_PUSH_INTERVAL: %w", err)
		}
		config.Telemetry.PushInterval = d
	}
	return nil
}

func overrideFloat(key string, target *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = f
	return nil
}

// Validate checks that the configuration can drive a session.
func (c *SimConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", c.TickRate)
	}
	if c.StartAltitude <= 0 {
		return fmt.Errorf("start altitude must be positive, got %v", c.StartAltitude)
	}
	if c.StartSpeed <= 0 {
		return fmt.Errorf("start speed must be positive, got %v", c.StartSpeed)
	}
	if c.Wind.GustFrequency < 0 || c.Wind.GustAmplitude < 0 {
		return fmt.Errorf("wind gust settings must be non-negative")
	}
	if c.Telemetry.CollectorURL != "" && c.Telemetry.PushInterval <= 0 {
		return fmt.Errorf("push interval must be positive when a collector is set")
	}
	return nil
}

// TimeStep returns the per-tick step in seconds.
func (c *SimConfig) TimeStep() float64 {
	return 1 / c.TickRate
}
