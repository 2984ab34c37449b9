package ports

import "github.com/aalvaropc/bowgen/internal/domain"

// ModelLoader loads antenna model specs from a source (e.g., filesystem).
type ModelLoader interface {
	LoadModel(path string) (domain.ModelSpec, error)
	ListModels(root string) ([]domain.ModelRef, error)
}
