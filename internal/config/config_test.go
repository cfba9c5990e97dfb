package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cannon.FuelType != "propane" {
		t.Errorf("expected fuel propane, got %s", cfg.Cannon.FuelType)
	}
	if cfg.Cannon.DragCoeff != DefaultDragCoeff {
		t.Errorf("expected cd %f, got %f", DefaultDragCoeff, cfg.Cannon.DragCoeff)
	}
	if cfg.Sim.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Sim.MaxSteps <= 0 {
		t.Error("max steps should be positive")
	}
	if cfg.Site.Azimuth != DefaultAzimuth {
		t.Errorf("expected azimuth %f, got %f", DefaultAzimuth, cfg.Site.Azimuth)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.yaml")

	cfg := DefaultConfig()
	cfg.Cannon.Name = "test"
	cfg.Cannon.FuelVolumeML = 7.5
	cfg.Site.Latitude = 52.0
	cfg.Sim.Integrator = "rk4"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Cannon.Name != "test" {
		t.Errorf("expected name test, got %s", loaded.Cannon.Name)
	}
	if loaded.Cannon.FuelVolumeML != 7.5 {
		t.Errorf("expected 7.5 ml, got %f", loaded.Cannon.FuelVolumeML)
	}
	if loaded.Site.Latitude != 52.0 {
		t.Errorf("expected latitude 52, got %f", loaded.Site.Latitude)
	}
	if loaded.Sim.Integrator != "rk4" {
		t.Errorf("expected rk4, got %s", loaded.Sim.Integrator)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("backyard")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Cannon.FuelType != "propane" {
		t.Errorf("expected propane, got %s", cfg.Cannon.FuelType)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("presets should be sorted")
		}
	}
}
