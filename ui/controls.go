// Package ui provides the raygui control overlay.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/physics"
)

// Action is a one-shot command requested through the panel.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionRecolor
)

// ControlsPanel renders sliders for the solver tunables and the
// reset/recolor buttons.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a hidden panel anchored at (x, y).
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel and applies slider values to the solver.
// Returns the button action requested this frame, if any.
func (c *ControlsPanel) Draw(s *physics.Solver) Action {
	if !c.visible {
		return ActionNone
	}

	x := c.x
	y := c.y
	sliderW := c.width - 60

	rl.DrawRectangle(int32(x-10), int32(y-10), int32(c.width+20), 230, rl.Fade(rl.RayWhite, 0.85))
	rl.DrawText("Solver", int32(x), int32(y), 20, rl.DarkGray)
	y += 30

	rl.DrawText("Gravity", int32(x), int32(y), 14, rl.Gray)
	y += 18
	gy := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 20},
		"0", "2000",
		s.Gravity().Y, 0, 2000,
	)
	rl.DrawText(fmt.Sprintf("%.0f", gy), int32(x+sliderW+8), int32(y+2), 16, rl.DarkGray)
	s.SetGravity(physics.Vec2{Y: gy})
	y += 30

	rl.DrawText("Cohesion", int32(x), int32(y), 14, rl.Gray)
	y += 18
	cohesion := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 20},
		"0", "0.5",
		s.Cohesion(), 0, 0.5,
	)
	rl.DrawText(fmt.Sprintf("%.2f", cohesion), int32(x+sliderW+8), int32(y+2), 16, rl.DarkGray)
	s.SetCohesion(cohesion)
	y += 30

	rl.DrawText("Damping", int32(x), int32(y), 14, rl.Gray)
	y += 18
	damping := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 20},
		"0", "100",
		s.Damping(), 0, 100,
	)
	rl.DrawText(fmt.Sprintf("%.0f", damping), int32(x+sliderW+8), int32(y+2), 16, rl.DarkGray)
	s.SetDamping(damping)
	y += 35

	action := ActionNone
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 110, Height: 28}, "Reset") {
		action = ActionReset
	}
	if gui.Button(rl.Rectangle{X: x + 120, Y: y, Width: 110, Height: 28}, "Recolor") {
		action = ActionRecolor
	}

	return action
}
