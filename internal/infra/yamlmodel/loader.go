package yamlmodel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	modelsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{modelsDir: "models"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithModelsDir(dir string) Option {
	return func(l *Loader) { l.modelsDir = dir }
}

var _ ports.ModelLoader = (*Loader)(nil)

func (l *Loader) LoadModel(path string) (domain.ModelSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.ModelSpec{}, &domain.OpError{
			Op:   "yamlmodel.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ym yamlModel
	if err := yaml.Unmarshal(b, &ym); err != nil {
		return domain.ModelSpec{}, &domain.OpError{
			Op:   "yamlmodel.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	spec, err := mapAndValidate(path, ym)
	if err != nil {
		return domain.ModelSpec{}, err
	}

	return spec, nil
}

func (l *Loader) ListModels(root string) ([]domain.ModelRef, error) {
	dir := filepath.Join(root, l.modelsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlmodel.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ModelRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readModelName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.ModelRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readModelName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
