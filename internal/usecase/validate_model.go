package usecase

import (
	"context"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/ports"
)

type ValidateModel struct {
	models ports.ModelLoader
}

func NewValidateModel(ml ports.ModelLoader) *ValidateModel {
	return &ValidateModel{models: ml}
}

// Execute loads a model spec and runs the geometry builder without emitting
// anything to disk. All geometry validation happens in the builder.
func (uc *ValidateModel) Execute(ctx context.Context, modelPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spec, err := uc.models.LoadModel(modelPath)
	if err != nil {
		return err
	}

	if _, err := domain.Build(spec); err != nil {
		return err
	}
	return nil
}
