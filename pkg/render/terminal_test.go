// pkg/render/terminal_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
	"github.com/opd-ai/go-flighttrainer/pkg/physics"
)

func sampleParams() engine.FlightParameters {
	return engine.FlightParameters{
		Tick:              42,
		SimTime:           0.7,
		Position:          physics.Vector3{Y: 3000},
		TrueAirspeed:      200,
		IndicatedAirspeed: 172.4,
		Mach:              0.61,
		Yaw:               0.5,
		Pitch:             0.05,
		Roll:              -0.2,
		AngleOfAttack:     0.03,
		ThrustActual:      52000,
		ThrustExpected:    60000,
		DragParasitic:     9000,
		DragInduced:       3000,
		DragWave:          0,
		DragTotal:         12000,
		Lift:              84000,
		Fuel:              2100,
		WindVelocity:      physics.Vector3{X: 5},
	}
}

func TestTerminalRendererWritesPanel(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)

	r.Render(sampleParams())

	out := buf.String()
	for _, want := range []string{"ALT", "IAS", "TAS", "HDG", "THR", "DRAG", "LIFT", "FUEL"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("clear codes emitted when disabled")
	}
	if strings.Contains(out, "STALL") {
		t.Error("stall flag shown for unstalled snapshot")
	}
	if strings.Contains(out, "AB ") && strings.Contains(out, "kN   AB") {
		t.Error("afterburner flag shown while not lit")
	}
}

func TestTerminalRendererClearCodes(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, true)

	r.Render(sampleParams())

	if !strings.HasPrefix(buf.String(), "\033[H\033[2J") {
		t.Error("expected ANSI home/clear prefix")
	}
}

func TestTerminalRendererFlags(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)

	params := sampleParams()
	params.Stalled = true
	params.Afterburner = true
	r.Render(params)

	out := buf.String()
	if !strings.Contains(out, "STALL") {
		t.Error("stall flag not shown")
	}
	if !strings.Contains(out, "AB") {
		t.Error("afterburner flag not shown")
	}
}

func TestNullRendererDoesNotPanic(t *testing.T) {
	r := NewNullRenderer()
	r.Render(sampleParams())
	r.Render(engine.FlightParameters{})
}
