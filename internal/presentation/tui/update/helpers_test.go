package update

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/akita-homepage/internal/application/settings"
	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"github.com/tesso57/akita-homepage/internal/domain/listing"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/presenter"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/state"
)

func testKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Toggle: "enter", Scroll: "space",
		Top: "g", Open: "o", Quit: "q",
	})
}

func testPage(t *testing.T) *usecase.Page {
	t.Helper()
	papers := make([]listing.Record, 7)
	for i := range papers {
		papers[i] = listing.Record{Title: fmt.Sprintf("Paper %d", i+1), Authors: "A"}
	}
	c := homepage.Content{
		PaperGroups: []homepage.PaperGroup{
			{ID: "simulators", Heading: "Simulators", Papers: papers},
			{ID: "small", Heading: "Small", Papers: papers[:2]},
		},
	}
	svc := usecase.NewHomepageService(nil, nil, homepage.Site{Title: "Akita", BaseURL: "https://akitasim.dev"}, "", 5)
	page, err := svc.Mount(c)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return page
}

func newTestState(t *testing.T) *state.ModelState {
	t.Helper()
	page := testPage(t)
	s := &state.ModelState{
		Session:  state.BrowseView,
		Help:     help.New(),
		Keys:     testKeys(),
		Sections: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		Viewport: viewport.New(60, 20),
		Page:     page,
		Width:    100,
		Height:   40,
	}
	presenter.ApplySectionList(&s.Sections, page)
	return s
}

// selectSection moves the sidebar cursor to the section with the given title.
func selectSection(t *testing.T, s *state.ModelState, title string) {
	t.Helper()
	for i, it := range s.Sections.Items() {
		if it.(*presenter.Item).Title() == title {
			s.Sections.Select(i)
			return
		}
	}
	t.Fatalf("no section titled %q", title)
}
