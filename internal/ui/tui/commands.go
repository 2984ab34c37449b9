package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/infra/deckstore"
	"github.com/aalvaropc/bowgen/internal/infra/workspacefinder"
	"github.com/aalvaropc/bowgen/internal/infra/yamlmodel"
	"github.com/aalvaropc/bowgen/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadModels(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return modelsLoadedMsg{root: root, err: err}
		}

		loader := yamlmodel.NewLoader(
			yamlmodel.WithModelsDir(cfg.Paths.ModelsDir),
		)

		refs, err := loader.ListModels(root)
		return modelsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewModel(path string) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)

		loader := yamlmodel.NewLoader()
		spec, err := loader.LoadModel(p)
		if err != nil {
			return modelPreviewMsg{path: p, err: err}
		}

		model, err := domain.Build(spec)
		if err != nil {
			return modelPreviewMsg{path: p, name: spec.Name, err: err}
		}

		return modelPreviewMsg{
			path:    p,
			name:    spec.Name,
			preview: renderModelSummary(spec, model),
		}
	}
}

func listenBuilder(ch <-chan buildDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return buildDoneMsg{err: errors.New("builder channel closed")}
		}
		return msg
	}
}

func startBuildAsync(
	workspaceRoot, modelPath string,
	log *slog.Logger,
	debug bool,
) (chan buildDoneMsg, tea.Cmd) {
	ch := make(chan buildDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("build.start",
			"workspace", workspaceRoot,
			"model_path", modelPath,
			"debug", debug,
		)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("build.load_config.failed", "err", err)
			ch <- buildDoneMsg{err: err}
			return
		}

		loader := yamlmodel.NewLoader(
			yamlmodel.WithModelsDir(cfg.Paths.ModelsDir),
		)
		store := deckstore.NewStore(workspaceRoot, cfg, deckstore.WithIndex(cfg.Output.Index))

		uc := usecase.NewBuildModel(loader, store)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		deck, id, execErr := uc.Execute(ctx, modelPath)

		if execErr != nil {
			log.Error("build.failed", "err", execErr)
		} else {
			log.Info("build.ok", "saved_id", id, "model", deck.ModelName, "bytes", len(deck.Text))
		}

		ch <- buildDoneMsg{deck: deck, id: id, err: execErr}
	}()

	return ch, listenBuilder(ch)
}
