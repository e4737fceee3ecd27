package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/novaecs/ecs"
	"github.com/novaecs/ecs/internal/config"
)

var (
	// Version is set via -ldflags at build time.
	Version = "dev"

	configPath string
	logger     zerolog.Logger
	runID      = uuid.New().String()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ecsdemo",
	Short:   "Run a small scheduler-driven demo app",
	Long:    "ecsdemo spawns a handful of entities, runs them through a scheduler update loop for a configured number of ticks, and exposes the run's stage metrics over Prometheus.",
	Version: Version,
	RunE:    runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an ecsdemo.yaml config file (optional, defaults apply if omitted)")
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("ecsdemo: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.JSON {
		logger = zerolog.New(os.Stdout).With().Timestamp().Str("run_id", runID).Logger()
	}

	logger.Info().
		Str("version", Version).
		Int("entity_count", cfg.Demo.EntityCount).
		Dur("tick_rate", cfg.Demo.TickRate).
		Msg("starting ecsdemo")

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		logger.Info().Str("addr", cfg.Metrics.Addr).Msg("serving /metrics")
	}

	app := buildDemoApp(cfg, logger)
	return app.Run()
}

// buildDemoApp wires DefaultPlugins plus the demo's own systems, spawning
// cfg.Demo.EntityCount entities at startup and exiting after cfg.Demo.Ticks
// updates (never, if Ticks is zero).
func buildDemoApp(cfg config.Config, logger zerolog.Logger) *ecs.App {
	app := ecs.NewApp()
	app.AddPlugin(ecs.DefaultPlugins)

	app.SetLogger(logger)
	app.SetObservation(logger, ecs.ObservationSettings{
		EnableStructuredLogging: true,
		EnablePrometheus:        cfg.Metrics.Enabled,
	})

	app.AddStartupSystem(ecs.NewSystem1(ecs.L("spawn_demo_entities"), func(cmds *ecs.Commands) {
		for i := 0; i < cfg.Demo.EntityCount; i++ {
			cmds.Push(spawnDemoEntity(i))
		}
	}))

	if err := app.AddSystem(ecs.NewSystem2(ecs.L("move_demo_entities"), moveDemoEntities)); err != nil {
		panic(err)
	}
	if err := app.AddSystem(ecs.NewSystem2(ecs.L("tick_counter"), countTicksAndMaybeExit(cfg.Demo.Ticks))); err != nil {
		panic(err)
	}

	return app
}

// demoPosition and demoVelocity are the components the bundled demo moves
// every tick, exercising View2 the way a real game's movement system would.
type demoPosition struct{ X, Y float64 }
type demoVelocity struct{ DX, DY float64 }

func spawnDemoEntity(i int) ecs.Command {
	return func(world *ecs.World) error {
		id := world.Spawn()
		ecs.Emplace(world.Registry, id, demoPosition{})
		ecs.Emplace(world.Registry, id, demoVelocity{DX: float64(i%3) - 1, DY: float64((i+1)%3) - 1})
		return nil
	}
}

func moveDemoEntities(view *ecs.ViewOf2[demoPosition, demoVelocity], log *ecs.SystemLogger) {
	moved := 0
	view.Each(func(_ ecs.EntityID, pos *demoPosition, vel *demoVelocity) bool {
		pos.X += vel.DX
		pos.Y += vel.DY
		moved++
		return true
	})
	scoped := log.With("moved", moved)
	scoped.Debug("advanced demo entities")
}

// countTicksAndMaybeExit returns a system that sets AppExit once limit
// updates have run. limit of zero means run forever.
func countTicksAndMaybeExit(limit int) func(*ecs.Local[int], *ecs.Resource[ecs.AppExit]) {
	return func(count *ecs.Local[int], exit *ecs.Resource[ecs.AppExit]) {
		if limit == 0 {
			return
		}
		*count.Get()++
		if *count.Get() >= limit {
			exit.Get().ShouldExit = true
		}
	}
}
