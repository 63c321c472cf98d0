// Package game owns the simulation driver: the body population, the
// solver, the spawn emitters and the telemetry plumbing.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grains/config"
	"github.com/pthm-cable/grains/physics"
	"github.com/pthm-cable/grains/renderer"
	"github.com/pthm-cable/grains/telemetry"
	"github.com/pthm-cable/grains/ui"
)

// Game holds the complete simulator state.
type Game struct {
	cfg *config.Config

	bodies []physics.Body
	solver *physics.Solver

	// Spawn state
	hue          float32
	spawnColors  []physics.RGB // replayed in spawn order after a recolor
	sinceSpawn   int
	totalSpawned int

	tick          int32
	paused        bool
	stepsPerFrame int

	perf    *telemetry.PerfCollector
	output  *telemetry.OutputManager
	perfLog bool

	palette *renderer.Palette

	bodyRenderer *renderer.BodyRenderer
	hud          *renderer.HUD
	controls     *ui.ControlsPanel
}

// New builds a game from the loaded configuration.
func New(cfg *config.Config, output *telemetry.OutputManager, perfLog bool) (*Game, error) {
	solver, err := physics.NewSolver(physics.Params{
		CellSize:     float32(cfg.Physics.CellSize),
		WorldWidth:   float32(cfg.World.Width),
		WorldHeight:  float32(cfg.World.Height),
		MaxRadius:    cfg.Derived.MaxRadius,
		Gravity:      physics.Vec2{Y: float32(cfg.Physics.GravityY)},
		FrameDT:      cfg.Derived.DT32,
		SubSteps:     cfg.Physics.SubSteps,
		Workers:      cfg.Physics.Workers,
		Cohesion:     float32(cfg.Physics.Cohesion),
		Damping:      float32(cfg.Physics.Damping),
		AntiPressure: cfg.Physics.AntiPressure,
	})
	if err != nil {
		return nil, fmt.Errorf("building solver: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		bodies:        make([]physics.Body, 0, cfg.Spawn.MaxBodies),
		solver:        solver,
		stepsPerFrame: 1,
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:        output,
		perfLog:       perfLog,
		bodyRenderer:  renderer.NewBodyRenderer(),
		hud:           renderer.NewHUD(),
		controls:      ui.NewControlsPanel(float32(cfg.Screen.Width)-270, 10, 250),
	}

	if cfg.Spawn.PaletteImage != "" {
		palette, err := renderer.LoadPalette(cfg.Spawn.PaletteImage, float32(cfg.World.Width), float32(cfg.World.Height))
		if err != nil {
			return nil, err
		}
		g.palette = palette
	}

	return g, nil
}

// Close releases the solver workers and output files.
func (g *Game) Close() {
	g.solver.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}

// Bodies returns the current body population.
func (g *Game) Bodies() []physics.Body {
	return g.bodies
}

// Tick returns the simulation tick counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// Paused returns whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Full reports whether the spawner has reached max_bodies.
func (g *Game) Full() bool {
	return len(g.bodies) >= g.cfg.Spawn.MaxBodies
}

// Reset clears the body population and restarts the spawn sequence.
// Sampled spawn colors survive so a recolored run replays the image.
func (g *Game) Reset() {
	g.bodies = g.bodies[:0]
	g.totalSpawned = 0
	g.sinceSpawn = 0
	g.hue = 0
	slog.Info("reset", "tick", g.tick)
}

// Recolor samples the palette image under every settled body and
// restarts the run so the pile rebuilds in image colors.
func (g *Game) Recolor() {
	if g.palette == nil {
		slog.Warn("recolor requested without a palette image")
		return
	}
	g.spawnColors = g.palette.Recolor(g.bodies)
	slog.Info("recolor", "bodies", len(g.spawnColors))
	g.Reset()
}
