// Benchmark tool for the physics core: runs a lattice of bodies
// headless and reports solver step-time statistics.
//
// Usage: go run ./cmd/bench -bodies 4000 -ticks 600 -workers 8
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/grains/config"
	"github.com/pthm-cable/grains/physics"
)

// tickRecord is one solver step for CSV export.
type tickRecord struct {
	Tick   int     `csv:"tick"`
	StepUS int64   `csv:"step_us"`
	Bodies int     `csv:"bodies"`
	Rest   float64 `csv:"rest_fraction"`
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	numBodies := flag.Int("bodies", 4000, "Number of bodies on the initial lattice")
	ticks := flag.Int("ticks", 600, "Number of solver steps")
	workers := flag.Int("workers", 0, "Worker count override (0 = config value)")
	outputDir := flag.String("output", "", "Output directory for per-tick CSV (empty = disabled)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()
	if *workers > 0 {
		cfg.Physics.Workers = *workers
	}

	solver, err := physics.NewSolver(physics.Params{
		CellSize:     float32(cfg.Physics.CellSize),
		WorldWidth:   float32(cfg.World.Width),
		WorldHeight:  float32(cfg.World.Height),
		MaxRadius:    cfg.Derived.MaxRadius,
		Gravity:      physics.Vec2{Y: float32(cfg.Physics.GravityY)},
		FrameDT:      cfg.Derived.DT32,
		SubSteps:     cfg.Physics.SubSteps,
		Workers:      cfg.Physics.Workers,
		Cohesion:     float32(cfg.Physics.Cohesion),
		Damping:      float32(cfg.Physics.Damping),
		AntiPressure: cfg.Physics.AntiPressure,
	})
	if err != nil {
		log.Fatalf("failed to build solver: %v", err)
	}
	defer solver.Close()

	bodies := lattice(*numBodies, cfg)
	fmt.Printf("bench: %d bodies, %d ticks, %d workers, %d sub-steps\n",
		len(bodies), *ticks, solver.Workers(), cfg.Physics.SubSteps)

	stepUS := make([]float64, 0, *ticks)
	records := make([]tickRecord, 0, *ticks)
	for i := 0; i < *ticks; i++ {
		solver.Update(bodies)
		us := solver.LastStep().Microseconds()
		stepUS = append(stepUS, float64(us))
		records = append(records, tickRecord{
			Tick:   i,
			StepUS: us,
			Bodies: len(bodies),
			Rest:   restFraction(bodies),
		})
	}

	sort.Float64s(stepUS)
	fmt.Printf("step time: mean %.0fus  std %.0fus  p50 %.0fus  p99 %.0fus  max %.0fus\n",
		stat.Mean(stepUS, nil),
		stat.StdDev(stepUS, nil),
		stat.Quantile(0.5, stat.Empirical, stepUS, nil),
		stat.Quantile(0.99, stat.Empirical, stepUS, nil),
		stepUS[len(stepUS)-1])

	if *outputDir != "" {
		if err := writeCSV(*outputDir, records); err != nil {
			log.Fatalf("failed to write results: %v", err)
		}
	}
}

// lattice fills the upper world with a square grid of bodies.
func lattice(n int, cfg *config.Config) []physics.Body {
	radius := float32(cfg.Spawn.Radius)
	spacing := radius*2 + 4
	perRow := int(float32(cfg.World.Width)/spacing) - 2

	bodies := make([]physics.Body, 0, n)
	for i := 0; i < n; i++ {
		col := i % perRow
		row := i / perRow
		pos := physics.Vec2{
			X: spacing + float32(col)*spacing,
			Y: spacing + float32(row)*spacing,
		}
		bodies = append(bodies, physics.NewBody(pos, radius, physics.RGB{R: 200, G: 200, B: 200}))
	}
	return bodies
}

// restFraction returns the share of bodies moving less than a tenth of
// a unit per step.
func restFraction(bodies []physics.Body) float64 {
	if len(bodies) == 0 {
		return 0
	}
	resting := 0
	for i := range bodies {
		v := bodies[i].Velocity()
		if math.Abs(float64(v.X)) < 0.1 && math.Abs(float64(v.Y)) < 0.1 {
			resting++
		}
	}
	return float64(resting) / float64(len(bodies))
}

// writeCSV dumps the per-tick records.
func writeCSV(dir string, records []tickRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "bench.csv"))
	if err != nil {
		return fmt.Errorf("creating bench.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing bench.csv: %w", err)
	}
	return nil
}
