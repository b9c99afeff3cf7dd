// cmd/trainer/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/opd-ai/go-flighttrainer/pkg/aircraft"
	"github.com/opd-ai/go-flighttrainer/pkg/atmosphere"
	"github.com/opd-ai/go-flighttrainer/pkg/config"
	"github.com/opd-ai/go-flighttrainer/pkg/engine"
	"github.com/opd-ai/go-flighttrainer/pkg/event"
	"github.com/opd-ai/go-flighttrainer/pkg/logging"
	"github.com/opd-ai/go-flighttrainer/pkg/render"
	"github.com/opd-ai/go-flighttrainer/pkg/telemetry"
	"github.com/opd-ai/go-flighttrainer/pkg/wind"
)

// fallbackRecord seeds a single aircraft when no roster file is found.
const fallbackRecord = "Falcon,8570,27.87,9.96,40,76300,127000,2120,230,15240,3200,0.016,25,0.9,3.5"

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	rosterPath := flag.String("roster", "roster.txt", "Path to the aircraft roster file")
	aircraftName := flag.String("aircraft", "", "Aircraft name to fly (default: first roster entry)")
	panel := flag.Bool("panel", false, "Draw the terminal instrument panel each tick")
	throttle := flag.Float64("throttle", 0.75, "Fixed throttle setting, >1.0 engages afterburner")
	flag.Parse()

	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	simConfig := loadConfig(ctx, logger, *configPath)
	spec := loadAircraft(ctx, logger, *rosterPath, *aircraftName)

	bus := event.NewBus()
	subscribeEventLogging(bus, logger)

	windModel := &wind.Model{
		BaseSpeed:     simConfig.Wind.BaseSpeed,
		AltitudeGain:  simConfig.Wind.AltitudeGain,
		GustAmplitude: simConfig.Wind.GustAmplitude,
		GustFrequency: simConfig.Wind.GustFrequency,
	}
	eng := engine.New(atmosphere.New(), windModel, bus)

	source := engine.FixedTrim{Settings: aircraft.Controls{Throttle: *throttle}}
	session := engine.NewSession(eng, spec, source, simConfig.TimeStep(), logger)
	session.State = aircraft.NewStateAt(spec, simConfig.StartAltitude, simConfig.StartSpeed)
	ctx = session.Context(ctx)

	var renderer render.Renderer = render.NewNullRenderer()
	if *panel {
		renderer = render.NewTerminalRenderer(os.Stdout, true)
	}

	holder, shutdownTelemetry := startTelemetry(ctx, logger, simConfig)
	defer shutdownTelemetry()

	logger.Info(ctx, "Starting flight session",
		"aircraft", spec.Name,
		"tick_rate", simConfig.TickRate,
		"start_altitude_m", simConfig.StartAltitude,
		"start_speed_ms", simConfig.StartSpeed,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(float64(time.Second) / simConfig.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			logger.Info(ctx, "Shutting down flight session",
				"ticks", session.CurrentTick,
				"sim_time_s", session.SimTime,
			)
			return
		case <-ticker.C:
			params := session.Step()
			if holder != nil {
				holder.Publish(params)
			}
			renderer.Render(params)
		}
	}
}

func loadConfig(ctx context.Context, logger *logging.Logger, path string) *config.SimConfig {
	var simConfig *config.SimConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	if err := simConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}
	return simConfig
}

func loadAircraft(ctx context.Context, logger *logging.Logger, rosterPath, name string) *aircraft.Spec {
	if _, err := os.Stat(rosterPath); os.IsNotExist(err) {
		logger.Info(ctx, "Roster file not found, using built-in aircraft",
			"roster_path", rosterPath,
		)
		spec, err := aircraft.ParseSpecRecord(fallbackRecord)
		if err != nil {
			logger.Error(ctx, "Built-in aircraft record is invalid", err)
			os.Exit(1)
		}
		return spec
	}

	specs, err := aircraft.LoadRoster(rosterPath)
	if err != nil {
		logger.Error(ctx, "Failed to load aircraft roster", err,
			"roster_path", rosterPath,
		)
		os.Exit(1)
	}
	if name == "" {
		return specs[0]
	}

	spec, ok := aircraft.FindSpec(specs, name)
	if !ok {
		names := make([]string, len(specs))
		for i, s := range specs {
			names[i] = s.Name
		}
		logger.Error(ctx, "Aircraft not found in roster", nil,
			"aircraft", name,
			"available", strings.Join(names, ", "),
		)
		os.Exit(1)
	}
	return spec
}

// startTelemetry wires the HTTP state server and the collector push
// loop per the configuration. Either surface may be disabled; with both
// off it returns a nil holder and a no-op shutdown.
func startTelemetry(ctx context.Context, logger *logging.Logger, simConfig *config.SimConfig) (*telemetry.Holder, func()) {
	if simConfig.Telemetry.Addr == "" && simConfig.Telemetry.CollectorURL == "" {
		return nil, func() {}
	}

	holder := &telemetry.Holder{}
	pushCtx, cancelPush := context.WithCancel(ctx)

	var server *telemetry.Server
	if simConfig.Telemetry.Addr != "" {
		server = telemetry.NewServer(simConfig.Telemetry.Addr, holder)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error(ctx, "Telemetry server failed", err)
			}
		}()
	}

	if simConfig.Telemetry.CollectorURL != "" {
		publisher := telemetry.NewPublisher(simConfig.Telemetry.CollectorURL)
		go publisher.Run(pushCtx, holder, simConfig.Telemetry.PushInterval)
	}

	shutdown := func() {
		cancelPush()
		if server != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "Telemetry server shutdown failed", err)
			}
		}
	}
	return holder, shutdown
}

func subscribeEventLogging(bus *event.Bus, logger *logging.Logger) {
	log := func(e event.Event) {
		fe, ok := e.(*event.FlightEvent)
		if !ok {
			return
		}
		logger.Info(context.Background(), "flight event",
			"type", string(fe.GetType()),
			"sim_time_s", fe.SimTime,
			"altitude_m", fe.Altitude,
			"mach", fe.Mach,
			"fuel_kg", fe.Fuel,
		)
	}
	for _, t := range []event.Type{
		event.StallWarning, event.StallRecovered,
		event.AfterburnerEngaged, event.AfterburnerDisengaged,
		event.MachCrossedUp, event.MachCrossedDown,
		event.FuelLow, event.FuelExhausted,
	} {
		bus.Subscribe(t, log)
	}
}
