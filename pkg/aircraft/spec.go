// Package aircraft defines the static performance record, the mutable
// flight state, and the control snapshot the engine consumes each tick.
package aircraft

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// specRecordFields is the number of fields in a roster record.
const specRecordFields = 15

// Spec holds an aircraft's static performance characteristics. It is
// loaded once per session and never mutated afterwards.
//
// Angles are stored in radians; the roster file carries them in degrees
// and ParseSpecRecord converts at that boundary. Speeds stay in km/h as
// the roster records them; use MaxSpeedMS/StallSpeedMS for SI values.
type Spec struct {
	Name              string
	EmptyMass         float64 // kg, without fuel
	WingArea          float64 // m²
	Wingspan          float64 // m
	SweepAngle        float64 // radians
	Thrust            float64 // N, military power
	AfterburnerThrust float64 // N, 0 if not equipped
	MaxSpeed          float64 // km/h
	StallSpeed        float64 // km/h
	ServiceCeiling    float64 // m
	FuelCapacity      float64 // kg
	Cd0               float64 // zero-lift drag coefficient
	MaxAoA            float64 // radians
	FuelBurn          float64 // kg/s at full military power
	AfterburnerBurn   float64 // kg/s with afterburner lit
}

// AspectRatio returns wingspan²/wingArea.
func (s *Spec) AspectRatio() float64 {
	return s.Wingspan * s.Wingspan / s.WingArea
}

// MaxSpeedMS returns the placard maximum speed in m/s.
func (s *Spec) MaxSpeedMS() float64 {
	return s.MaxSpeed / 3.6
}

// StallSpeedMS returns the placard stall speed in m/s.
func (s *Spec) StallSpeedMS() float64 {
	return s.StallSpeed / 3.6
}

// HasAfterburner reports whether the aircraft carries an afterburner.
func (s *Spec) HasAfterburner() bool {
	return s.AfterburnerThrust > 0
}

// Validate checks the invariants the engine relies on: every magnitude
// non-negative, positive mass and wing geometry so the aspect ratio is
// finite and positive.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("aircraft spec: empty name")
	}
	if s.EmptyMass <= 0 {
		return fmt.Errorf("aircraft %s: mass must be positive, got %v", s.Name, s.EmptyMass)
	}
	if s.WingArea <= 0 {
		return fmt.Errorf("aircraft %s: wing area must be positive, got %v", s.Name, s.WingArea)
	}
	if s.Wingspan <= 0 {
		return fmt.Errorf("aircraft %s: wingspan must be positive, got %v", s.Name, s.Wingspan)
	}
	ar := s.AspectRatio()
	if math.IsNaN(ar) || math.IsInf(ar, 0) || ar <= 0 {
		return fmt.Errorf("aircraft %s: aspect ratio %v is not finite and positive", s.Name, ar)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"sweep angle", s.SweepAngle},
		{"thrust", s.Thrust},
		{"afterburner thrust", s.AfterburnerThrust},
		{"max speed", s.MaxSpeed},
		{"stall speed", s.StallSpeed},
		{"service ceiling", s.ServiceCeiling},
		{"fuel capacity", s.FuelCapacity},
		{"Cd0", s.Cd0},
		{"max AoA", s.MaxAoA},
		{"fuel burn", s.FuelBurn},
		{"afterburner fuel burn", s.AfterburnerBurn},
	} {
		if f.value < 0 || math.IsNaN(f.value) {
			return fmt.Errorf("aircraft %s: %s must be non-negative, got %v", s.Name, f.name, f.value)
		}
	}
	return nil
}

// ParseSpecRecord parses one comma-delimited roster record. Field order:
// name, mass, wing area, wingspan, sweep angle (deg), thrust, afterburner
// thrust, max speed, stall speed, service ceiling, fuel capacity, Cd0,
// max AoA (deg), fuel burn, afterburner fuel burn.
func ParseSpecRecord(record string) (*Spec, error) {
	fields := strings.Split(record, ",")
	if len(fields) != specRecordFields {
		return nil, fmt.Errorf("spec record: expected %d fields, got %d", specRecordFields, len(fields))
	}

	values := make([]float64, specRecordFields-1)
	for i, raw := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("spec record field %d: %w", i+2, err)
		}
		values[i] = v
	}

	spec := &Spec{
		Name:              strings.TrimSpace(fields[0]),
		EmptyMass:         values[0],
		WingArea:          values[1],
		Wingspan:          values[2],
		SweepAngle:        values[3] * math.Pi / 180,
		Thrust:            values[4],
		AfterburnerThrust: values[5],
		MaxSpeed:          values[6],
		StallSpeed:        values[7],
		ServiceCeiling:    values[8],
		FuelCapacity:      values[9],
		Cd0:               values[10],
		MaxAoA:            values[11] * math.Pi / 180,
		FuelBurn:          values[12],
		AfterburnerBurn:   values[13],
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// LoadRoster reads a roster file with one spec record per line. Blank
// lines and lines starting with '#' are skipped.
func LoadRoster(path string) ([]*Spec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer file.Close()

	var specs []*Spec
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		spec, err := ParseSpecRecord(text)
		if err != nil {
			return nil, fmt.Errorf("roster line %d: %w", line, err)
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("roster file %s contains no aircraft", path)
	}
	return specs, nil
}

// FindSpec returns the roster entry with the given name, matched
// case-insensitively.
func FindSpec(specs []*Spec, name string) (*Spec, bool) {
	for _, s := range specs {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}
