// Package renderer draws the simulation state with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/physics"
)

// BodyRenderer renders the particle population.
type BodyRenderer struct{}

// NewBodyRenderer creates a new body renderer.
func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{}
}

// Draw renders all bodies as filled circles.
func (r *BodyRenderer) Draw(bodies []physics.Body) {
	for i := range bodies {
		b := &bodies[i]
		color := rl.Color{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: 255}
		rl.DrawCircleV(rl.Vector2{X: b.Pos.X, Y: b.Pos.Y}, b.Radius, color)
	}
}
