package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akita-homepage/internal/application/settings"
	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/presenter"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/state"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/update"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/view"
	listview "github.com/tesso57/akita-homepage/internal/presentation/tui/view/list"
)

// Model represents the preview application state.
type Model struct {
	settings    settings.Settings
	state       *state.ModelState
	unsubscribe func()
}

// NewModel creates a preview model for a mounted page. The page's lists
// belong to this model until Close is called.
func NewModel(cfg settings.Settings, page *usecase.Page) *Model {
	st := newModelState(cfg, page)
	m := &Model{
		settings:    cfg,
		state:       st,
		unsubscribe: update.Subscribe(st),
	}
	update.RefreshViewport(st)
	return m
}

// Close detaches the model from the page's lists.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
		return m, nil
	}

	if m.state.Session != state.BrowseView {
		return m, nil
	}

	prevIdx := m.state.Sections.Index()
	var cmd tea.Cmd
	m.state.Sections, cmd = m.state.Sections.Update(msg)
	if m.state.Sections.Index() != prevIdx {
		m.state.Err = nil
		m.state.StatusMessage = ""
		update.RefreshViewport(m.state)
		m.state.Viewport.GotoTop()
	}
	return m, cmd
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings, page *usecase.Page) *state.ModelState {
	st := &state.ModelState{
		Session:  state.BrowseView,
		Sections: newSectionList(cfg),
		Viewport: newViewport(),
		Help:     help.New(),
		Keys:     state.NewKeyMap(cfg.KeyMap),
		Page:     page,
	}
	presenter.ApplySectionList(&st.Sections, page)
	return st
}

func newSectionList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewSectionDelegate(lipgloss.Color(cfg.Theme.Accent)), 0, 0)
	l.Title = "Sections"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingRight(1)
	return vp
}
