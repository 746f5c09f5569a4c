// Package metrics holds the fixed sizes of the preview layout.
package metrics

// HeaderRows is the height of the header above the main pane: the link
// line and the section line.
const HeaderRows = 2

// SidebarTitleRows is the sidebar title plus the blank row under it.
const SidebarTitleRows = 2

const (
	// SidebarMaxWidth caps the sidebar, which otherwise takes a third of
	// the window.
	SidebarMaxWidth = 32
	SidebarBorder   = 1
)

// HeaderInset is the width used by the header icons and frame.
const HeaderInset = 7

// ItemPadding is the blank column kept right of a sidebar entry.
const ItemPadding = 1

// SidebarWidth returns the sidebar width for a window width.
func SidebarWidth(window int) int {
	return max(min(window/3, SidebarMaxWidth), 0)
}

// MainWidth returns the width left to the main pane, at least 1.
func MainWidth(window int) int {
	return max(window-SidebarWidth(window)-SidebarBorder, 1)
}
