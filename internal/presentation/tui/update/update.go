// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/akita-homepage/internal/domain/listing"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/intent"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/presenter"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/state"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/textutil"
)

// Deps groups external dependencies for updates.
type Deps struct {
	OpenBrowser func(string) error
}

// Subscribe re-renders the main pane whenever a publication list toggles.
// Call the returned function to detach every subscriber.
func Subscribe(s *state.ModelState) func() {
	if s == nil || s.Page == nil {
		return func() {}
	}
	unsubs := make([]func(), 0, len(s.Page.Groups))
	for _, g := range s.Page.Groups {
		heading := g.Group.Heading
		unsubs = append(unsubs, g.List.Subscribe(func(st listing.State) {
			presenter.ApplySectionList(&s.Sections, s.Page)
			RefreshViewport(s)
			s.StatusMessage = toggleStatus(heading, st)
		}))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func toggleStatus(heading string, st listing.State) string {
	if st.Expanded {
		return fmt.Sprintf("%s: showing all %d", heading, st.Total)
	}
	return fmt.Sprintf("%s: showing %d of %d", heading, len(st.Visible), st.Total)
}

// HandleWindowSize resizes every pane.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	RefreshViewport(s)
}

// HandleKeyMsg applies a key press. The bool reports whether the key was
// consumed so it should not reach the section list.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Help.ShowAll && msg.Type == tea.KeyEsc {
		s.Help.ShowAll = false
		return nil, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Toggle:
		toggleSelected(s)
		return nil, true
	case intent.Scroll:
		s.Viewport.SetYOffset(s.Viewport.YOffset + s.Viewport.Height)
		return nil, true
	case intent.Top:
		s.Viewport.GotoTop()
		return nil, true
	case intent.Open:
		openSelected(s, deps)
		return nil, true
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func toggleSelected(s *state.ModelState) {
	item, ok := SelectedSection(s)
	if !ok || item.Kind != presenter.Publications || s.Page == nil {
		return
	}
	l, ok := s.Page.List(item.GroupID)
	if !ok {
		return
	}
	if !l.ShowToggle() {
		s.StatusMessage = fmt.Sprintf("%s: all %d shown", item.GroupID, l.Len())
		return
	}
	l.Toggle()
}

func openSelected(s *state.ModelState, deps Deps) {
	item, ok := SelectedSection(s)
	if !ok || item.URL() == "" || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(item.URL()); err != nil {
		s.Err = err
		return
	}
	s.Err = nil
}

// SelectedSection returns the highlighted sidebar section.
func SelectedSection(s *state.ModelState) (*presenter.Item, bool) {
	if s == nil {
		return nil, false
	}
	item, ok := s.Sections.SelectedItem().(*presenter.Item)
	return item, ok && item != nil
}

// RefreshViewport renders the selected section into the main pane, keeping
// the scroll position where the content still allows it.
func RefreshViewport(s *state.ModelState) {
	if s == nil {
		return
	}
	item, _ := SelectedSection(s)
	body := presenter.SectionBody(s.Page, item)
	s.Viewport.SetContent(textutil.Wrap(body, wrapWidth(s)))
}

func wrapWidth(s *state.ModelState) int {
	return s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
}
