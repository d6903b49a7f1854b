package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Error("screen dimensions not set in defaults")
	}
	if cfg.Population.PerColor <= 0 {
		t.Error("per-color population not set in defaults")
	}
	if cfg.Physics.CruiseSpeed <= 0 {
		t.Error("cruise speed not set in defaults")
	}
	if cfg.Arena.Shape != "" || cfg.Arena.Size != "" {
		t.Error("defaults should select a random arena")
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	wantMax := float32(cfg.Physics.CruiseSpeed * cfg.Physics.SpeedLimitFactor)
	if cfg.Derived.MaxSpeed != wantMax {
		t.Errorf("max speed = %f, want %f", cfg.Derived.MaxSpeed, wantMax)
	}

	// Grid cell size falls back to the interaction radius when unset.
	if cfg.Physics.GridCellSize == 0 && cfg.Derived.CellSize != float32(cfg.Physics.InteractionRadius) {
		t.Errorf("cell size = %f, want interaction radius %f", cfg.Derived.CellSize, cfg.Physics.InteractionRadius)
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	override := []byte("population:\n  per_color: 7\narena:\n  shape: circle\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Population.PerColor != 7 {
		t.Errorf("per_color = %d, want 7 from override", cfg.Population.PerColor)
	}
	if cfg.Arena.Shape != "circle" {
		t.Errorf("shape = %q, want circle from override", cfg.Arena.Shape)
	}
	// Untouched fields keep their defaults.
	if cfg.Screen.Width <= 0 {
		t.Error("override wiped defaulted fields")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Population.PerColor != cfg.Population.PerColor {
		t.Error("written config did not round-trip")
	}
}
