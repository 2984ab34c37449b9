package ports

import "github.com/aalvaropc/bowgen/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
