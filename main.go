// grains is a 2D granular simulator: streams of circular bodies fall
// under gravity, collide and pile up inside a fixed boundary. The
// physics core is a Verlet integrator with a uniform-grid broad phase
// and a multithreaded narrow phase.
package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/config"
	"github.com/pthm-cable/grains/game"
	"github.com/pthm-cable/grains/telemetry"
)

var (
	configPath = flag.String("config", "", "Config YAML file (empty = embedded defaults)")
	headless   = flag.Bool("headless", false, "Run without graphics (for logging/benchmarking)")
	maxTicks   = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever, useful with -headless)")
	perfLog    = flag.Bool("perf", false, "Enable performance logging")
	outputDir  = flag.String("output", "", "Directory for CSV telemetry output (empty = disabled)")
	logFile    = flag.String("logfile", "", "Write logs to file instead of stderr")
)

func main() {
	flag.Parse()

	logDest := os.Stderr
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			slog.Error("opening log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logDest = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logDest, nil)))

	config.MustInit(*configPath)
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("initializing output", "error", err)
		os.Exit(1)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("writing config snapshot", "error", err)
	}

	g, err := game.New(cfg, output, *perfLog)
	if err != nil {
		slog.Error("initializing game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if *headless {
		runHeadless(g)
		return
	}
	runGraphics(g, cfg)
}

// runHeadless steps the simulation as fast as possible.
func runHeadless(g *game.Game) {
	for i := 0; *maxTicks == 0 || i < *maxTicks; i++ {
		g.Step()
	}
	slog.Info("done", "ticks", g.Tick(), "bodies", len(g.Bodies()))
}

// runGraphics runs the raylib window loop.
func runGraphics(g *game.Game, cfg *config.Config) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "grains")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	for !rl.WindowShouldClose() {
		g.HandleInput()
		for i := 0; i < g.StepsPerFrame(); i++ {
			g.Step()
		}
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= int32(*maxTicks) {
			break
		}
	}
}
