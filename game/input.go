package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HandleInput processes keyboard shortcuts for the graphics loop.
func (g *Game) HandleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		g.paused = !g.paused
	case rl.IsKeyPressed(rl.KeyTab):
		g.controls.Toggle()
	case rl.IsKeyPressed(rl.KeyN):
		g.Reset()
	case rl.IsKeyPressed(rl.KeyR):
		g.Recolor()
	case rl.IsKeyPressed(rl.KeyUp):
		if g.stepsPerFrame < 10 {
			g.stepsPerFrame++
			slog.Info("speed", "steps_per_frame", g.stepsPerFrame)
		}
	case rl.IsKeyPressed(rl.KeyDown):
		if g.stepsPerFrame > 1 {
			g.stepsPerFrame--
			slog.Info("speed", "steps_per_frame", g.stepsPerFrame)
		}
	}
}

// StepsPerFrame returns the simulation speed multiplier.
func (g *Game) StepsPerFrame() int {
	return g.stepsPerFrame
}
