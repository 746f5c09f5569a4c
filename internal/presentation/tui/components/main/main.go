// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the main view component.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		PaddingLeft(1)

	switch {
	case p.Header == "":
		return style.Render(p.Body)
	case p.Body == "":
		return style.Render(p.Header)
	default:
		return style.Render(lipgloss.JoinVertical(lipgloss.Left, p.Header, p.Body))
	}
}
