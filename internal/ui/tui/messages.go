package tui

import "github.com/aalvaropc/bowgen/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type modelsLoadedMsg struct {
	root string
	refs []domain.ModelRef
	err  error
}

type modelPreviewMsg struct {
	path    string
	name    string
	preview string
	err     error
}

type buildDoneMsg struct {
	deck domain.Deck
	id   string
	err  error
}
