// pkg/telemetry/metrics.go
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
)

var (
	altitudeGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_altitude_meters"})
	trueAirspeedGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_true_airspeed_mps"})
	indicatedGauge    = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_indicated_airspeed_mps"})
	machGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_mach"})
	aoaGauge          = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_angle_of_attack_rad"})
	liftGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_lift_newton"})
	thrustGauge       = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_thrust_newton"})
	massGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_mass_kg"})
	fuelGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_fuel_kg"})
	stalledGauge      = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_stalled"})
	afterburnerGauge  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flight_afterburner"})
	dragGauge         = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flight_drag_newton",
			Help: "Current drag force by component (in Newtons)",
		},
		[]string{"component"},
	)
	tickCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flight_ticks_total",
		Help: "Total simulation ticks observed",
	})
)

func init() {
	prometheus.MustRegister(
		altitudeGauge, trueAirspeedGauge, indicatedGauge, machGauge,
		aoaGauge, liftGauge, thrustGauge,
		massGauge, fuelGauge, stalledGauge, afterburnerGauge,
		dragGauge, tickCounter,
	)
}

// Observe publishes one snapshot to the process metrics registry.
func Observe(params engine.FlightParameters) {
	altitudeGauge.Set(params.Altitude())
	trueAirspeedGauge.Set(params.TrueAirspeed)
	indicatedGauge.Set(params.IndicatedAirspeed)
	machGauge.Set(params.Mach)
	aoaGauge.Set(params.AngleOfAttack)
	liftGauge.Set(params.Lift)
	thrustGauge.Set(params.ThrustActual)
	massGauge.Set(params.Mass)
	fuelGauge.Set(params.Fuel)
	stalledGauge.Set(boolGauge(params.Stalled))
	afterburnerGauge.Set(boolGauge(params.Afterburner))
	dragGauge.WithLabelValues("parasitic").Set(params.DragParasitic)
	dragGauge.WithLabelValues("induced").Set(params.DragInduced)
	dragGauge.WithLabelValues("wave").Set(params.DragWave)
	dragGauge.WithLabelValues("total").Set(params.DragTotal)
	tickCounter.Inc()
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
