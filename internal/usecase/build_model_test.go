package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/bowgen/internal/domain"
)

type fakeModelLoader struct {
	spec domain.ModelSpec
}

func (f fakeModelLoader) LoadModel(string) (domain.ModelSpec, error) { return f.spec, nil }
func (f fakeModelLoader) ListModels(string) ([]domain.ModelRef, error) {
	return []domain.ModelRef{{Name: f.spec.Name, Path: f.spec.Name + ".yaml"}}, nil
}

type errModelLoader struct {
	err error
}

func (f errModelLoader) LoadModel(string) (domain.ModelSpec, error) {
	return domain.ModelSpec{}, f.err
}
func (f errModelLoader) ListModels(string) ([]domain.ModelRef, error) { return nil, f.err }

type fakeDeckStore struct {
	saved []domain.Deck
	id    string
	err   error
}

func (f *fakeDeckStore) SaveDeck(deck domain.Deck) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, deck)
	return f.id, nil
}

func validSpec() domain.ModelSpec {
	return domain.ModelSpec{
		Name:       "bowtie-freespace",
		Title:      "Bowtie antenna in free space",
		Volume:     domain.Volume{X: 0.200, Y: 0.200, Z: 0.100},
		Spacing:    domain.Spacing{X: 0.001, Y: 0.001, Z: 0.001},
		TimeWindow: 3e-9,
		Waveform:   domain.Waveform{Shape: "gaussian", Amplitude: 1, Frequency: 1.5e9, ID: "pulse"},
		Source:     domain.SourceSpec{Polarisation: domain.AxisX, Impedance: 50},
		Bowtie:     domain.BowtieSpec{Length: 0.050, Height: 0.100},
		Placement:  domain.Placement{Variant: domain.PlacementCentered},
		Gap:        domain.FeedGap{Axis: domain.AxisX, Positive: 1, Negative: 1},
	}
}

func TestBuildModel_EmitsAndSaves(t *testing.T) {
	store := &fakeDeckStore{id: "deck-1"}
	builtAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := NewBuildModel(fakeModelLoader{spec: validSpec()}, store,
		WithNow(func() time.Time { return builtAt }))

	deck, id, err := uc.Execute(context.Background(), "models/bowtie-freespace.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "deck-1" {
		t.Errorf("id = %q, want deck-1", id)
	}
	if deck.ModelName != "bowtie-freespace" {
		t.Errorf("deck model name = %q", deck.ModelName)
	}
	if deck.Variant != domain.PlacementCentered {
		t.Errorf("deck variant = %q", deck.Variant)
	}
	if !deck.BuiltAt.Equal(builtAt) {
		t.Errorf("deck built at = %v, want %v", deck.BuiltAt, builtAt)
	}
	if !strings.HasPrefix(string(deck.Text), "#title: Bowtie antenna in free space\n") {
		t.Errorf("deck text starts with %q", firstLine(deck.Text))
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved deck, got %d", len(store.saved))
	}
	if !bytes.Equal(store.saved[0].Text, deck.Text) {
		t.Error("stored deck differs from returned deck")
	}
}

func TestBuildModel_NilStoreSkipsSave(t *testing.T) {
	uc := NewBuildModel(fakeModelLoader{spec: validSpec()}, nil)

	deck, id, err := uc.Execute(context.Background(), "m.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Errorf("expected empty id without a store, got %q", id)
	}
	if len(deck.Text) == 0 {
		t.Error("expected deck text")
	}
}

func TestBuildModel_LoaderError(t *testing.T) {
	loadErr := errors.New("model not found")
	uc := NewBuildModel(errModelLoader{err: loadErr}, &fakeDeckStore{})

	_, _, err := uc.Execute(context.Background(), "missing.yaml")
	if err == nil {
		t.Fatal("expected error loading model")
	}
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loadErr, got %v", err)
	}
}

func TestBuildModel_InvalidGeometryAbortsBeforeSave(t *testing.T) {
	spec := validSpec()
	spec.Bowtie.Length = 0
	store := &fakeDeckStore{}
	uc := NewBuildModel(fakeModelLoader{spec: spec}, store)

	_, _, err := uc.Execute(context.Background(), "m.yaml")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidGeometry) {
		t.Fatalf("expected KindInvalidGeometry, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Error("no deck must be saved when the builder fails")
	}
}

func TestBuildModel_StoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	uc := NewBuildModel(fakeModelLoader{spec: validSpec()}, &fakeDeckStore{err: storeErr})

	_, _, err := uc.Execute(context.Background(), "m.yaml")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped storeErr, got %v", err)
	}
}

func TestBuildModel_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewBuildModel(fakeModelLoader{spec: validSpec()}, &fakeDeckStore{})
	_, _, err := uc.Execute(ctx, "m.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
