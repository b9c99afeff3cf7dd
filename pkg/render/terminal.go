// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
)

// TerminalRenderer draws a simple ASCII gauge panel, one frame per
// snapshot, suitable for a cockpit-in-a-terminal trainer.
type TerminalRenderer struct {
	out        io.Writer
	clearCodes bool
}

// NewTerminalRenderer creates a terminal renderer writing to out. When
// clearCodes is set, each frame starts with ANSI home/clear escapes so
// the panel redraws in place.
func NewTerminalRenderer(out io.Writer, clearCodes bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, clearCodes: clearCodes}
}

// Render implements Renderer.
func (r *TerminalRenderer) Render(params engine.FlightParameters) {
	if r.clearCodes {
		fmt.Fprint(r.out, "\033[H\033[2J")
	}

	const rule = "+------------------------------------------------------------+"
	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "| ALT %8.0f m   IAS %6.1f m/s   TAS %6.1f m/s   M %.3f |\n",
		params.Altitude(), params.IndicatedAirspeed, params.TrueAirspeed, params.Mach)
	fmt.Fprintf(r.out, "| HDG %6.1f°  PITCH %6.1f°  ROLL %6.1f°  AoA %6.2f°      |\n",
		deg(params.Yaw), deg(params.Pitch), deg(params.Roll), deg(params.AngleOfAttack))
	fmt.Fprintf(r.out, "| THR %5.1f kN / %5.1f kN   %s  FUEL %7.1f kg         |\n",
		params.ThrustActual/1000, params.ThrustExpected/1000, r.burnerFlag(params), params.Fuel)
	fmt.Fprintf(r.out, "| DRAG p %6.1f  i %6.1f  w %6.1f  total %7.1f kN      |\n",
		params.DragParasitic/1000, params.DragInduced/1000, params.DragWave/1000, params.DragTotal/1000)
	fmt.Fprintf(r.out, "| LIFT %8.1f kN %s  WIND %5.1f m/s                    |\n",
		params.Lift/1000, r.stallFlag(params), params.WindVelocity.Length())
	fmt.Fprintln(r.out, rule)
}

func (r *TerminalRenderer) burnerFlag(params engine.FlightParameters) string {
	if params.Afterburner {
		return "AB "
	}
	return "   "
}

func (r *TerminalRenderer) stallFlag(params engine.FlightParameters) string {
	if params.Stalled {
		return strings.Repeat("!", 5) + " STALL"
	}
	return "           "
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
