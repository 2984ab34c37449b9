package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/gprmax"
	"github.com/aalvaropc/bowgen/internal/ports"
)

// BuildModel loads a model spec, derives its geometry, emits the deck and
// (unless the store is nil) persists it.
type BuildModel struct {
	models ports.ModelLoader
	store  ports.DeckStore
	now    func() time.Time
}

type BuildOption func(*BuildModel)

// WithNow is useful for tests.
func WithNow(now func() time.Time) BuildOption {
	return func(uc *BuildModel) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewBuildModel(ml ports.ModelLoader, store ports.DeckStore, opts ...BuildOption) *BuildModel {
	uc := &BuildModel{
		models: ml,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *BuildModel) Execute(ctx context.Context, modelPath string) (domain.Deck, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Deck{}, "", err
	}

	spec, err := uc.models.LoadModel(modelPath)
	if err != nil {
		return domain.Deck{}, "", err
	}

	model, err := domain.Build(spec)
	if err != nil {
		return domain.Deck{}, "", err
	}

	deck := domain.Deck{
		ModelName: spec.Name,
		Variant:   spec.Placement.Variant,
		Text:      gprmax.EncodeDeck(gprmax.Emit(spec, model)),
		BuiltAt:   uc.now(),
	}

	if uc.store == nil {
		return deck, "", nil
	}

	id, err := uc.store.SaveDeck(deck)
	if err != nil {
		return deck, "", err
	}
	return deck, id, nil
}
