package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/metrics"
	"github.com/tesso57/akita-homepage/internal/presentation/tui/textutil"
)

// SectionItem is an item that SectionDelegate can render.
type SectionItem interface {
	list.Item
	Title() string
	URL() string
}

// SectionDelegate renders one sidebar section per line.
type SectionDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewSectionDelegate creates a new SectionDelegate.
func NewSectionDelegate(themeColor lipgloss.Color) *SectionDelegate {
	styles := list.NewDefaultItemStyles()
	styles.NormalTitle = styles.NormalTitle.PaddingRight(metrics.ItemPadding)
	styles.SelectedTitle = styles.SelectedTitle.
		PaddingRight(metrics.ItemPadding).
		Foreground(themeColor).
		BorderForeground(themeColor)
	return &SectionDelegate{
		Styles: styles,
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d SectionDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d SectionDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d SectionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d SectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(SectionItem)
	if !ok {
		return
	}
	style := d.Styles.NormalTitle
	if index == m.Index() {
		style = d.Styles.SelectedTitle
	}
	// One more column stays free so wide runes never wrap the row.
	width := m.Width() - style.GetHorizontalFrameSize() - 1
	_, _ = io.WriteString(w, style.Render(textutil.Truncate(i.Title(), width)))
}
