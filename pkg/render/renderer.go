// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
	"github.com/opd-ai/go-flighttrainer/pkg/logging"
)

// Renderer is the rendering collaborator's contract: it consumes one
// FlightParameters snapshot per tick for display only and must never
// write back into engine state. Snapshots are values, so a renderer
// cannot reach live state even by accident.
type Renderer interface {
	Render(params engine.FlightParameters)
}

// NullRenderer logs snapshots at debug level instead of drawing.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Render implements Renderer.
func (r *NullRenderer) Render(params engine.FlightParameters) {
	r.logger.Debug(context.Background(), "render frame",
		"tick", params.Tick,
		"altitude_m", params.Altitude(),
		"ias_ms", params.IndicatedAirspeed,
		"mach", params.Mach,
	)
}
