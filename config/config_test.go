package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 1000 || cfg.World.Height != 1000 {
		t.Errorf("world = %gx%g, want 1000x1000", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Physics.SubSteps != 8 {
		t.Errorf("sub_steps = %d, want 8", cfg.Physics.SubSteps)
	}
	if !cfg.Physics.AntiPressure {
		t.Error("anti_pressure should default to true")
	}
	if cfg.Derived.DT32 <= 0 {
		t.Error("derived DT32 not computed")
	}
	if cfg.Derived.MaxRadius != 5 {
		t.Errorf("derived MaxRadius = %f, want 5", cfg.Derived.MaxRadius)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("physics:\n  gravity_y: 500\n  workers: 4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Physics.GravityY != 500 {
		t.Errorf("gravity_y = %g, want overridden 500", cfg.Physics.GravityY)
	}
	if cfg.Physics.Workers != 4 {
		t.Errorf("workers = %d, want overridden 4", cfg.Physics.Workers)
	}
	// Untouched fields keep their defaults.
	if cfg.Physics.SubSteps != 8 {
		t.Errorf("sub_steps = %d, want default 8", cfg.Physics.SubSteps)
	}
}

func TestLoadRejectsSmallCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("physics:\n  cell_size: 6\nspawn:\n  radius: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for cell_size below body diameter")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Physics.GravityY != cfg.Physics.GravityY {
		t.Errorf("gravity_y = %g, want %g", reloaded.Physics.GravityY, cfg.Physics.GravityY)
	}
}
