package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial config (no paths/defaults)
	content := []byte("bowgen:\n  output:\n    index: false\n")
	if err := os.WriteFile(filepath.Join(root, "bowgen.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Output.Index != false {
		t.Fatalf("expected index=false, got=%v", cfg.Output.Index)
	}
	if cfg.Defaults.Model != "bowtie-freespace" {
		t.Fatalf("expected default model=bowtie-freespace, got=%s", cfg.Defaults.Model)
	}
	if cfg.Paths.ModelsDir != "models" {
		t.Fatalf("expected models dir=models, got=%s", cfg.Paths.ModelsDir)
	}
	if cfg.Paths.OutDir != "out" {
		t.Fatalf("expected out dir=out, got=%s", cfg.Paths.OutDir)
	}
}

func TestLoadConfig_OverridesFromFile(t *testing.T) {
	tmp := t.TempDir()
	content := []byte("bowgen:\n  defaults:\n    model: bowtie-ground\n  paths:\n    models_dir: antennas\n    out_dir: decks\n")
	if err := os.WriteFile(filepath.Join(tmp, "bowgen.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Defaults.Model != "bowtie-ground" {
		t.Fatalf("expected model=bowtie-ground, got=%s", cfg.Defaults.Model)
	}
	if cfg.Paths.ModelsDir != "antennas" {
		t.Fatalf("expected models dir=antennas, got=%s", cfg.Paths.ModelsDir)
	}
	if cfg.Paths.OutDir != "decks" {
		t.Fatalf("expected out dir=decks, got=%s", cfg.Paths.OutDir)
	}
	if cfg.Output.Index != true {
		t.Fatalf("expected index default true, got=%v", cfg.Output.Index)
	}
}
