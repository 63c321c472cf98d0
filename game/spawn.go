package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/physics"
)

// spawnBurst emits one body per stream every interval until the
// population cap is reached. Streams sit side by side at the emitter
// origin and launch along a shared angle, so the particles arc into
// the world as parallel jets.
func (g *Game) spawnBurst() {
	spawn := &g.cfg.Spawn
	if len(g.bodies) >= spawn.MaxBodies {
		return
	}

	g.sinceSpawn++
	if g.sinceSpawn < spawn.IntervalTicks {
		return
	}
	g.sinceSpawn = 0

	angle := float64(spawn.Angle)
	velocity := physics.Vec2{
		X: float32(math.Cos(angle) * spawn.Speed),
		Y: float32(math.Sin(angle) * spawn.Speed),
	}

	for k := 0; k < spawn.Streams && len(g.bodies) < spawn.MaxBodies; k++ {
		pos := physics.Vec2{
			X: float32(spawn.OriginX + float64(k)*spawn.Spacing),
			Y: float32(spawn.OriginY),
		}

		body := physics.NewBody(pos, float32(spawn.Radius), g.nextColor())
		g.solver.SetBodyVelocity(&body, velocity)
		g.bodies = append(g.bodies, body)
		g.totalSpawned++
	}

	g.hue++
	if g.hue >= 360 {
		g.hue = 0
	}
}

// nextColor returns the replayed palette sample when one exists for
// this spawn index, otherwise the next hue on the rainbow cycle.
func (g *Game) nextColor() physics.RGB {
	if idx := len(g.bodies); idx < len(g.spawnColors) {
		return g.spawnColors[idx]
	}
	c := rl.ColorFromHSV(g.hue, 1, 0.9)
	return physics.RGB{R: c.R, G: c.G, B: c.B}
}
