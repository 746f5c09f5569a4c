// Package tui provides the terminal preview of the homepage.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/akita-homepage/internal/presentation/tui/components/main"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/components/modal"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/metrics"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/state"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/textutil"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/update"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	title := "Akita"
	if m.state.Page != nil && m.state.Page.Site.Title != "" {
		title = m.state.Page.Site.Title
	}
	return sidebar.Props{
		View:   m.state.Sections.View(),
		Width:  m.state.Sections.Width(),
		Height: m.state.Sections.Height(),
		Active: m.state.Session == state.BrowseView,
		Title:  title,
		Accent: lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	item, ok := update.SelectedSection(m.state)
	if !ok {
		return header.Props{Visible: false}
	}
	width := update.MainWidth(m.state) - metrics.HeaderInset
	return header.Props{
		Visible: true,
		Link:    headerLine(item.URL(), width),
		Section: headerLine(item.Title(), width),
		Muted:   lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	body := m.state.Viewport.View()
	if m.state.Err != nil {
		body = "Error: " + m.state.Err.Error() + "\n\n" + body
	}
	return mainview.Props{
		Width:  update.MainWidth(m.state),
		Height: m.state.Viewport.Height + metrics.HeaderRows,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
