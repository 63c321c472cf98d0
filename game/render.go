package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/telemetry"
	"github.com/pthm-cable/grains/ui"
)

// Draw renders the world, the HUD and the controls overlay.
func (g *Game) Draw() {
	renderStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.bodyRenderer.Draw(g.bodies)
	g.hud.Draw(len(g.bodies), g.solver.LastStep(), g.paused)

	switch g.controls.Draw(g.solver) {
	case ui.ActionReset:
		g.Reset()
	case ui.ActionRecolor:
		g.Recolor()
	}

	rl.EndDrawing()

	g.perf.RecordFrame()
	g.perf.RecordPhase(telemetry.PhaseRender, time.Since(renderStart))
}
