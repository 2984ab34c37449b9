package yamlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/bowgen/internal/domain"
)

const freeSpaceYAML = `name: bowtie-freespace
title: Bowtie antenna in free space
domain: {x: 0.200, y: 0.200, z: 0.100}
dx_dy_dz: {x: 0.001, y: 0.001, z: 0.001}
time_window: 3.0e-9
waveform:
  shape: gaussian
  amplitude: 1.0
  frequency: 1.5e9
  id: pulse
source:
  polarisation: x
  impedance: 50
bowtie:
  length: 0.050
  height: 0.100
placement:
  variant: centered
views:
  full_domain: true
`

const groundYAML = `name: bowtie-ground
title: Bowtie antenna above ground offset
domain: {x: 0.200, y: 0.120, z: 0.120}
dx_dy_dz: {x: 0.001, y: 0.001, z: 0.001}
time_window: 5.0e-9
waveform:
  shape: gaussian
  amplitude: 1.0
  frequency: 1.5e9
source:
  polarisation: x
  impedance: 50
bowtie:
  length: 0.050
  height: 0.080
placement:
  variant: ground_offset
  offset_axis: z
  offset: 0.020
feed_gap:
  axis: x
  positive: 2
  negative: 1
probe:
  offset: {x: 0, y: 0, z: 0.020}
`

func writeModel(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadModel_FreeSpace(t *testing.T) {
	tmp := t.TempDir()
	p := writeModel(t, tmp, "freespace.yaml", freeSpaceYAML)

	spec, err := NewLoader().LoadModel(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spec.Name != "bowtie-freespace" {
		t.Errorf("name = %q", spec.Name)
	}
	if spec.Volume != (domain.Volume{X: 0.200, Y: 0.200, Z: 0.100}) {
		t.Errorf("volume = %v", spec.Volume)
	}
	if spec.Placement.Variant != domain.PlacementCentered {
		t.Errorf("variant = %q", spec.Placement.Variant)
	}
	if spec.Probe.Enabled {
		t.Error("expected probe disabled when absent")
	}
	if !spec.Views.FullDomain {
		t.Error("expected full-domain view enabled")
	}

	// Defaults for fields the file omits.
	if spec.Gap != (domain.FeedGap{Axis: domain.AxisX, Positive: 1, Negative: 1}) {
		t.Errorf("gap = %+v, want one-cell symmetric default", spec.Gap)
	}
	if spec.Material != domain.MaterialPEC {
		t.Errorf("material = %q, want %q", spec.Material, domain.MaterialPEC)
	}
}

func TestLoadModel_GroundVariant(t *testing.T) {
	tmp := t.TempDir()
	p := writeModel(t, tmp, "ground.yaml", groundYAML)

	spec, err := NewLoader().LoadModel(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spec.Placement.Variant != domain.PlacementGroundOffset {
		t.Errorf("variant = %q", spec.Placement.Variant)
	}
	if spec.Placement.OffsetAxis != domain.AxisZ || spec.Placement.Offset != 0.020 {
		t.Errorf("placement = %+v", spec.Placement)
	}
	if spec.Gap != (domain.FeedGap{Axis: domain.AxisX, Positive: 2, Negative: 1}) {
		t.Errorf("gap = %+v", spec.Gap)
	}
	if !spec.Probe.Enabled {
		t.Fatal("expected probe enabled")
	}
	if spec.Probe.Offset != (domain.Point{Z: 0.020}) {
		t.Errorf("probe offset = %v", spec.Probe.Offset)
	}
	if spec.Waveform.ID != "pulse" {
		t.Errorf("waveform id = %q, want default pulse", spec.Waveform.ID)
	}

	// The loaded spec must survive the builder.
	if _, err := domain.Build(spec); err != nil {
		t.Fatalf("built loaded spec: %v", err)
	}
}

func TestLoadModel_NotFound(t *testing.T) {
	_, err := NewLoader().LoadModel(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadModel_MalformedYAML(t *testing.T) {
	tmp := t.TempDir()
	p := writeModel(t, tmp, "bad.yaml", "name: [broken")

	_, err := NewLoader().LoadModel(p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadModel_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing name", "title: T\nwaveform: {shape: gaussian}\nplacement: {variant: centered}\n"},
		{"missing title", "name: m\nwaveform: {shape: gaussian}\nplacement: {variant: centered}\n"},
		{"missing waveform shape", "name: m\ntitle: T\nplacement: {variant: centered}\n"},
		{"missing variant", "name: m\ntitle: T\nwaveform: {shape: gaussian}\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tmp := t.TempDir()
			p := writeModel(t, tmp, "m.yaml", c.content)

			_, err := NewLoader().LoadModel(p)
			if err == nil {
				t.Fatal("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
		})
	}
}

func TestListModels_SortedWithFallbackNames(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "models")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeModel(t, dir, "zz.yaml", freeSpaceYAML)
	writeModel(t, dir, "anon.yaml", "title: unnamed\n")
	writeModel(t, dir, "notes.txt", "not a model")

	refs, err := NewLoader().ListModels(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Name != "anon" {
		t.Errorf("first ref = %q, want filename fallback 'anon'", refs[0].Name)
	}
	if refs[1].Name != "bowtie-freespace" {
		t.Errorf("second ref = %q", refs[1].Name)
	}
}

func TestListModels_MissingDir(t *testing.T) {
	_, err := NewLoader().ListModels(t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestListModels_CustomDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "antennas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeModel(t, dir, "m.yaml", freeSpaceYAML)

	refs, err := NewLoader(WithModelsDir("antennas")).ListModels(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
}
