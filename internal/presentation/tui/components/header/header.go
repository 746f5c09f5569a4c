// Package header provides the main pane header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Link    string
	Section string
	Muted   lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	color := p.Muted
	if color == "" {
		color = lipgloss.Color("240")
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Render(fmt.Sprintf("🔗 %s\n📚 %s", p.Link, p.Section))
}
