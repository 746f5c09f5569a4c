package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/metrics"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainHeight        int
}

// UpdateListSizes fits the sidebar list and viewport to the window.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.Sections.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	// Main pane pads one column on the left.
	s.Viewport.Width = clampMin(layout.mainWidth-1, 1)
	s.Viewport.Height = layout.mainHeight
}

// MainWidth is the width left for the main pane.
func MainWidth(s *state.ModelState) int {
	return buildLayoutMetrics(s).mainWidth
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	mainHeight := clampMin(availableHeight-metrics.HeaderRows, 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleRows, 1)

	sidebarWidth := metrics.SidebarWidth(s.Width)
	mainWidth := metrics.MainWidth(s.Width)

	sidebarListHeight = reservePaginationSpace(s.Sections, sidebarListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainHeight:        mainHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.StatusMessage, s.Help.View(&s.Keys)))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
