package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Halo.TotalMass <= 0 {
		t.Error("total mass should be positive")
	}
	if cfg.Halo.ScaleRadius <= 0 {
		t.Error("scale radius should be positive")
	}
	if cfg.Grid.Points < 2 {
		t.Error("grid should have at least 2 points")
	}
	if cfg.Grid.RMin <= 0 || cfg.Grid.RMax <= cfg.Grid.RMin {
		t.Error("grid bounds invalid")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("milky_way")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Halo.TotalMass != 1.5e12 {
		t.Errorf("expected total mass 1.5e12, got %g", cfg.Halo.TotalMass)
	}
	if cfg.Halo.ScaleRadius != 25 {
		t.Errorf("expected scale radius 25, got %g", cfg.Halo.ScaleRadius)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, name := range presets {
		if name == "dwarf" {
			found = true
		}
	}
	if !found {
		t.Error("expected dwarf preset in list")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halo.yaml")

	cfg := DefaultConfig()
	cfg.Halo.TotalMass = 5e11
	cfg.Grid.Log = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Halo.TotalMass != 5e11 {
		t.Errorf("expected total mass 5e11, got %g", loaded.Halo.TotalMass)
	}
	if !loaded.Grid.Log {
		t.Error("expected log grid after roundtrip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
