package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenModels
	screenDetail
	screenSettings
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type modelItem struct {
	name string
	path string
}

func (m modelItem) Title() string       { return m.name }
func (m modelItem) Description() string { return m.path }
func (m modelItem) FilterValue() string { return m.name }

type model struct {
	theme Theme
	deps  Deps

	scr       screen
	menu      list.Model
	modelList list.Model

	workspaceFound bool
	workspaceRoot  string

	building bool
	buildCh  chan buildDoneMsg

	detailTitle string
	detailBody  string
	toast       string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Models", "Browse, preview and build antenna models"},
		menuItem{"Settings", "Workspace and defaults"},
		menuItem{"Quit", "Exit Bowgen"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Bowgen"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ml := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	ml.Title = "Models"
	ml.SetShowStatusBar(false)
	ml.SetFilteringEnabled(true)
	ml.SetShowHelp(false)

	return model{
		theme:     t,
		deps:      deps,
		scr:       screenHome,
		menu:      l,
		modelList: ml,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.modelList.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case modelsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, modelItem{name: r.Name, path: r.Path})
		}
		m.modelList.SetItems(items)
		return m, nil

	case modelPreviewMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.scr = screenDetail
		m.detailTitle = msg.name
		m.detailBody = msg.preview
		return m, nil

	case buildDoneMsg:
		m.building = false
		m.buildCh = nil
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.scr = screenDetail
		m.detailTitle = "Deck: " + msg.deck.ModelName
		m.detailBody = renderDeckResult(msg.deck, msg.id)
		return m, nil

	case tea.KeyMsg:
		m.toast = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc":
			switch m.scr {
			case screenDetail:
				m.scr = screenModels
				return m, nil
			case screenModels, screenSettings:
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			switch m.scr {
			case screenHome:
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				switch {
				case strings.EqualFold(it.title, "Quit"):
					return m, tea.Quit
				case strings.EqualFold(it.title, "Models"):
					if !m.workspaceFound {
						m.toast = "No workspace found (Settings → init)"
						return m, nil
					}
					m.scr = screenModels
					return m, cmdLoadModels(m.workspaceRoot)
				case strings.EqualFold(it.title, "Settings"):
					m.scr = screenSettings
					return m, nil
				}
				return m, nil

			case screenModels:
				it, ok := m.modelList.SelectedItem().(modelItem)
				if !ok {
					return m, nil
				}
				return m, cmdPreviewModel(it.path)
			}

		case "b":
			if m.scr == screenModels && !m.building {
				it, ok := m.modelList.SelectedItem().(modelItem)
				if !ok {
					return m, nil
				}
				m.building = true
				ch, cmd := startBuildAsync(m.workspaceRoot, it.path, m.deps.Logger, m.deps.Debug)
				m.buildCh = ch
				return m, cmd
			}

		case "i":
			if m.scr == screenSettings {
				root := m.workspaceRoot
				if root == "" {
					root = "."
				}
				return m, cmdInitWorkspaceHere(m.deps, root)
			}
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenModels:
		var cmd tea.Cmd
		m.modelList, cmd = m.modelList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Bowgen") + "\n" +
		m.theme.Subtitle.Render("Bowtie antenna models and gprMax input decks") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nCreate one in Settings → Init Workspace.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenModels:
		status := "enter preview • b build • esc back • q home"
		if m.building {
			status = "building…"
		}
		help := m.theme.Help.Render(status)
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.modelList.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.detailTitle) + "\n\n" +
				clampString(m.detailBody, 4000) + "\n\n" +
				m.theme.Help.Render("esc back • q home"),
		)
		return wrap.Render(header + toast + "\n\n" + card)

	case screenSettings:
		card := m.theme.Card.Render(
			m.theme.Title.Render("Settings") + "\n\n" +
				"i — initialize workspace here (overwrites templates)\n\n" +
				m.theme.Help.Render("esc back • q home"),
		)
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
