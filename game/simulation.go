package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/grains/telemetry"
)

// Step advances the simulation one tick: spawn, solve, telemetry.
func (g *Game) Step() {
	if g.paused {
		return
	}

	g.perf.StartTick()

	spawnStart := time.Now()
	g.spawnBurst()
	g.perf.RecordPhase(telemetry.PhaseSpawn, time.Since(spawnStart))

	g.solver.Update(g.bodies)

	t := g.solver.Timings()
	g.perf.RecordPhase(telemetry.PhaseGravity, t.Gravity)
	g.perf.RecordPhase(telemetry.PhaseConstraint, t.Constraint)
	g.perf.RecordPhase(telemetry.PhaseBroadPhase, t.BroadPhase)
	g.perf.RecordPhase(telemetry.PhaseNarrowPhase, t.NarrowPhase)
	g.perf.RecordPhase(telemetry.PhaseIntegrate, t.Integrate)

	g.perf.EndTick()
	g.tick++

	if window := int32(g.cfg.Telemetry.StatsWindow); window > 0 && g.tick%window == 0 {
		g.flushTelemetry()
	}
}

// flushTelemetry logs and persists the window statistics.
func (g *Game) flushTelemetry() {
	stepMS := float64(g.solver.LastStep().Microseconds()) / 1000
	ws := telemetry.CollectWindow(g.tick, g.bodies, g.totalSpawned, stepMS)
	slog.Info("telemetry", "window", ws)

	if err := g.output.WriteTelemetry(ws); err != nil {
		slog.Error("writing telemetry", "error", err)
	}

	stats := g.perf.Stats()
	if g.perfLog {
		stats.LogStats()
	}
	if err := g.output.WritePerf(stats, g.tick); err != nil {
		slog.Error("writing perf", "error", err)
	}
}
