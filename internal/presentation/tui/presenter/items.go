// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/domain/listing"
)

// Kind identifies what a sidebar section shows.
type Kind int

const (
	Overview Kind = iota
	Simulators
	Events
	Publications
)

const sectionDivider = "----------------------------------------"

// Item is a view model for a sidebar section.
type Item struct {
	Kind      Kind
	GroupID   string
	TitleText string
	Desc      string
	Link      string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the section title.
func (i *Item) Title() string { return i.TitleText }

// URL returns where the section lives on the website.
func (i *Item) URL() string { return i.Link }

// Description returns a short summary for list display.
func (i *Item) Description() string { return i.Desc }

// BuildSectionItems builds sidebar items for a mounted page.
func BuildSectionItems(page *usecase.Page) []list.Item {
	if page == nil {
		return nil
	}
	base := page.Site.BaseURL
	items := []list.Item{
		&Item{Kind: Overview, TitleText: page.Site.Title, Desc: page.Site.Tagline, Link: base + "/"},
	}
	if len(page.Content.Simulators) > 0 {
		items = append(items, &Item{
			Kind:      Simulators,
			TitleText: "Simulators",
			Desc:      fmt.Sprintf("%d simulators", len(page.Content.Simulators)),
			Link:      base + "/#simulators",
		})
	}
	items = append(items, &Item{
		Kind:      Events,
		TitleText: "Community Events",
		Desc:      fmt.Sprintf("%d upcoming, %d past", len(page.Content.UpcomingEvents), len(page.Content.Events)),
		Link:      base + "/#events",
	})
	for _, g := range page.Groups {
		items = append(items, &Item{
			Kind:      Publications,
			GroupID:   g.Group.ID,
			TitleText: fmt.Sprintf("#%d %s", g.Group.Count(), g.Group.Heading),
			Desc:      g.List.ToggleLabel(),
			Link:      base + "/#pub-" + g.Group.ID,
		})
	}
	return items
}

// ApplySectionList updates the list model with section items.
func ApplySectionList(model *list.Model, page *usecase.Page) {
	model.SetItems(BuildSectionItems(page))
}

// SectionBody renders the text shown in the main pane for a section.
func SectionBody(page *usecase.Page, item *Item) string {
	if page == nil || item == nil {
		return ""
	}
	var b strings.Builder
	switch item.Kind {
	case Overview:
		fmt.Fprintf(&b, "%s\n%s\n\n", page.Site.Title, page.Site.Tagline)
		for _, f := range page.Content.Features {
			fmt.Fprintf(&b, "%s\n%s\n%s\n\n", sectionDivider, f.Title, f.Description)
		}
	case Simulators:
		for _, s := range page.Content.Simulators {
			fmt.Fprintf(&b, "%s\n%s\n\n", s.Title, s.Description)
		}
	case Events:
		if len(page.Content.UpcomingEvents) > 0 {
			b.WriteString("Upcoming\n")
			for _, ev := range page.Content.UpcomingEvents {
				if ev.Date.IsZero() {
					fmt.Fprintf(&b, "  %s\n    %s\n", ev.Title, ev.Link)
				} else {
					fmt.Fprintf(&b, "  %s (%s)\n    %s\n", ev.Title, ev.Date.Format("Jan 2, 2006"), ev.Link)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("Past\n")
		for _, ev := range page.Content.Events {
			fmt.Fprintf(&b, "  %s\n    %s\n", ev.Title, ev.Link)
		}
	case Publications:
		l, ok := page.List(item.GroupID)
		if !ok {
			return ""
		}
		writePublications(&b, l.State())
	}
	return strings.TrimRight(b.String(), "\n")
}

func writePublications(b *strings.Builder, st listing.State) {
	for i, rec := range st.Visible {
		fmt.Fprintf(b, "%d. %s\n", i+1, PaperLine(rec))
		if rec.HasLink() {
			fmt.Fprintf(b, "   %s\n", rec.Link)
		}
	}
	if st.ShowToggle {
		fmt.Fprintf(b, "\n[ %s ]\n", st.ToggleLabel)
	}
}

// PaperLine formats a record the way the homepage lists it.
func PaperLine(rec listing.Record) string {
	line := rec.Title + ", " + rec.FormattedAuthors()
	if rec.HasYear() {
		line = fmt.Sprintf("%d, %s", rec.Year, line)
	}
	return line
}
