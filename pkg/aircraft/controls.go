// pkg/aircraft/controls.go
package aircraft

import "math"

// Throttle range. Values above 1.0 command afterburner (war emergency
// power); the input collaborator may push slightly past 1.0 and the
// engine clamps at MaxThrottle.
const (
	MaxThrottle = 1.01
)

// Controls is the per-tick input snapshot from the controls collaborator.
// The engine treats it as read-only. Pitch and Roll are absolute attitudes
// in radians; YawRate is a commanded rate in rad/s (the coordinated-turn
// contribution from roll is added by the engine).
//
// This is the one boundary where unit conventions meet: everything inside
// the engine is radians, and collaborators that work in degrees convert
// once via FromDegrees.
type Controls struct {
	Throttle float64 // [0, 1.01], > 1.0 engages afterburner
	Pitch    float64 // radians
	Roll     float64 // radians
	YawRate  float64 // rad/s
}

// Afterburner reports whether this snapshot commands afterburner power.
func (c Controls) Afterburner() bool {
	return c.Throttle > 1.0
}

// Clamp returns a copy with every field forced into its documented range.
func (c Controls) Clamp() Controls {
	c.Throttle = clamp(c.Throttle, 0, MaxThrottle)
	c.Pitch = clamp(c.Pitch, -math.Pi/2, math.Pi/2)
	c.Roll = clamp(c.Roll, -math.Pi, math.Pi)
	return c
}

// FromDegrees builds a Controls snapshot from degree-based attitude
// inputs. Throttle passes through unchanged.
func FromDegrees(throttle, pitchDeg, rollDeg, yawRateDeg float64) Controls {
	const degToRad = math.Pi / 180
	return Controls{
		Throttle: throttle,
		Pitch:    pitchDeg * degToRad,
		Roll:     rollDeg * degToRad,
		YawRate:  yawRateDeg * degToRad,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
