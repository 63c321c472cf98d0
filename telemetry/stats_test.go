package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/grains/physics"
)

func TestCollectWindowEmpty(t *testing.T) {
	ws := CollectWindow(10, nil, 0, 0)

	if ws.Bodies != 0 {
		t.Errorf("Bodies = %d, want 0", ws.Bodies)
	}
	if ws.SpeedMean != 0 || ws.RestFraction != 0 {
		t.Error("expected zero stats for empty population")
	}
}

func TestCollectWindow(t *testing.T) {
	dt := float32(1.0 / 60.0)
	bodies := []physics.Body{
		physics.NewBody(physics.Vec2{X: 100, Y: 100}, 5, physics.RGB{}),
		physics.NewBody(physics.Vec2{X: 200, Y: 100}, 5, physics.RGB{}),
		physics.NewBody(physics.Vec2{X: 300, Y: 100}, 5, physics.RGB{}),
		physics.NewBody(physics.Vec2{X: 400, Y: 100}, 5, physics.RGB{}),
	}
	// Two moving at 2 units/step, two at rest.
	bodies[0].SetVelocity(physics.Vec2{X: 120}, dt)
	bodies[1].SetVelocity(physics.Vec2{Y: 120}, dt)

	ws := CollectWindow(60, bodies, 4, 1.5)

	if ws.WindowEndTick != 60 {
		t.Errorf("WindowEndTick = %d, want 60", ws.WindowEndTick)
	}
	if ws.Bodies != 4 || ws.Spawned != 4 {
		t.Errorf("Bodies = %d, Spawned = %d, want 4, 4", ws.Bodies, ws.Spawned)
	}
	if math.Abs(ws.SpeedMean-1) > 1e-5 {
		t.Errorf("SpeedMean = %f, want 1", ws.SpeedMean)
	}
	if math.Abs(ws.RestFraction-0.5) > 1e-9 {
		t.Errorf("RestFraction = %f, want 0.5", ws.RestFraction)
	}
	if math.Abs(ws.SpeedMax-2) > 1e-5 {
		t.Errorf("SpeedMax = %f, want 2", ws.SpeedMax)
	}
	if ws.StepMS != 1.5 {
		t.Errorf("StepMS = %f, want 1.5", ws.StepMS)
	}
}

func TestCollectWindowQuantilesOrdered(t *testing.T) {
	dt := float32(1.0 / 60.0)
	var bodies []physics.Body
	for i := 0; i < 100; i++ {
		b := physics.NewBody(physics.Vec2{X: float32(i) * 9, Y: 100}, 4, physics.RGB{})
		b.SetVelocity(physics.Vec2{X: float32(i)}, dt)
		bodies = append(bodies, b)
	}

	ws := CollectWindow(1, bodies, 100, 0)

	if ws.SpeedP50 > ws.SpeedP90 {
		t.Errorf("p50 %f > p90 %f", ws.SpeedP50, ws.SpeedP90)
	}
	if ws.SpeedP90 > ws.SpeedMax {
		t.Errorf("p90 %f > max %f", ws.SpeedP90, ws.SpeedMax)
	}
}
