package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.RecordPhase(PhaseBroadPhase, 100*time.Microsecond)
		pc.RecordPhase(PhaseNarrowPhase, 200*time.Microsecond)
		time.Sleep(50 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if got := stats.PhaseAvg[PhaseBroadPhase]; got != 100*time.Microsecond {
		t.Errorf("broad_phase avg = %v, want 100us", got)
	}

	if got := stats.PhaseAvg[PhaseNarrowPhase]; got != 200*time.Microsecond {
		t.Errorf("narrow_phase avg = %v, want 200us", got)
	}
}

func TestPerfCollector_PhaseAccumulation(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.StartTick()
	// The constraint phase runs twice per sub-step; durations accumulate.
	pc.RecordPhase(PhaseConstraint, 50*time.Microsecond)
	pc.RecordPhase(PhaseConstraint, 70*time.Microsecond)
	pc.EndTick()

	stats := pc.Stats()
	if got := stats.PhaseAvg[PhaseConstraint]; got != 120*time.Microsecond {
		t.Errorf("constraint avg = %v, want accumulated 120us", got)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.RecordPhase(PhaseBroadPhase, time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero average with no samples")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps with no samples")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.StartTick()
	pc.RecordPhase(PhaseNarrowPhase, 300*time.Microsecond)
	pc.EndTick()

	record := pc.Stats().ToCSV(42)

	if record.WindowEnd != 42 {
		t.Errorf("WindowEnd = %d, want 42", record.WindowEnd)
	}
	if record.NarrowPhasePct <= 0 {
		t.Error("expected positive narrow phase percentage")
	}
}
