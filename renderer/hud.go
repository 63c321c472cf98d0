package renderer

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD draws the status overlay in the top-left corner.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders body count, solver step time and FPS.
func (h *HUD) Draw(bodyCount int, stepTime time.Duration, paused bool) {
	rl.DrawText(fmt.Sprintf("bodies: %d", bodyCount), 10, 10, 20, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("step: %.2f ms", float64(stepTime.Microseconds())/1000), 10, 35, 20, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("fps: %d", rl.GetFPS()), 10, 60, 20, rl.DarkGray)
	if paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Maroon)
	}
}
