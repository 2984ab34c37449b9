package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/infra/deckstore"
	"github.com/aalvaropc/bowgen/internal/infra/workspacefinder"
	"github.com/aalvaropc/bowgen/internal/infra/yamlmodel"
	"github.com/aalvaropc/bowgen/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	models ports.ModelLoader
	store  ports.DeckStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamlmodel.NewLoader(
		yamlmodel.WithModelsDir(cfg.Paths.ModelsDir),
	)

	store := deckstore.NewStore(root, cfg, deckstore.WithIndex(cfg.Output.Index))

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		models: loader,
		store:  store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `bowgen init`): %w", wd, err)
	}
	return root, nil
}

func resolveModelPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Model
	}
	if in == "" {
		return "", fmt.Errorf("model is required (use --model or -m)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	modelsDir := filepath.Join(ws.root, ws.cfg.Paths.ModelsDir)

	// If user provided "bowtie.yaml", treat it as file under models dir.
	if hasYAMLExt(in) {
		p := filepath.Join(modelsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// If user provided "bowtie", try bowtie.yaml / bowtie.yml in models dir.
	p1 := filepath.Join(modelsDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(modelsDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by model "name" field.
	refs, err := ws.models.ListModels(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("model %q not found in %q", in, modelsDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
