package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/grains/physics"
)

// restSpeed is the per-step displacement below which a body counts as
// settled.
const restSpeed = 0.1

// WindowStats holds aggregated simulation statistics for a time window.
type WindowStats struct {
	WindowEndTick int32 `csv:"window_end"`

	// Population at window end
	Bodies  int `csv:"bodies"`
	Spawned int `csv:"spawned"`

	// Per-step speed distribution (implicit Verlet velocity magnitude)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Fraction of bodies at rest
	RestFraction float64 `csv:"rest_fraction"`

	// Solver step wall time
	StepMS float64 `csv:"step_ms"`
}

// CollectWindow samples the body population at a window boundary.
func CollectWindow(tick int32, bodies []physics.Body, spawned int, stepMS float64) WindowStats {
	ws := WindowStats{
		WindowEndTick: tick,
		Bodies:        len(bodies),
		Spawned:       spawned,
		StepMS:        stepMS,
	}
	if len(bodies) == 0 {
		return ws
	}

	speeds := make([]float64, len(bodies))
	resting := 0
	for i := range bodies {
		s := float64(bodies[i].Velocity().Length())
		speeds[i] = s
		if s < restSpeed {
			resting++
		}
		if s > ws.SpeedMax {
			ws.SpeedMax = s
		}
	}
	sort.Float64s(speeds)

	ws.SpeedMean = stat.Mean(speeds, nil)
	ws.SpeedStd = stat.StdDev(speeds, nil)
	ws.SpeedP50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	ws.SpeedP90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	ws.RestFraction = float64(resting) / float64(len(bodies))

	return ws
}

// LogValue implements slog.LogValuer for structured logging.
func (ws WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bodies", ws.Bodies),
		slog.Int("spawned", ws.Spawned),
		slog.Float64("speed_mean", ws.SpeedMean),
		slog.Float64("speed_p90", ws.SpeedP90),
		slog.Float64("rest_fraction", ws.RestFraction),
		slog.Float64("step_ms", ws.StepMS),
	)
}
