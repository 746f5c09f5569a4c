// Package web renders the homepage as HTML and serves or writes it.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"github.com/tesso57/akita-homepage/internal/domain/listing"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type itemView struct {
	Title   string
	Link    string
	Authors string
	Year    int
}

type groupView struct {
	ID          string
	Heading     string
	Count       int
	Items       []itemView
	ShowToggle  bool
	ToggleLabel string
	ToggleHref  string
}

type pageView struct {
	Site           homepage.Site
	Features       []homepage.Feature
	Simulators     []homepage.Simulator
	Events         []homepage.Event
	UpcomingEvents []homepage.Event
	Groups         []groupView
}

// Renderer executes the homepage template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page. Nothing is written if the template fails.
func (r *Renderer) Render(w io.Writer, page *usecase.Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.gohtml", buildView(page)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// ExpandedPath is where the page with group id expanded lives.
func ExpandedPath(id string) string {
	return "/publications/" + id + "/"
}

func buildView(page *usecase.Page) pageView {
	v := pageView{
		Site:           page.Site,
		Features:       page.Content.Features,
		Simulators:     page.Content.Simulators,
		Events:         page.Content.Events,
		UpcomingEvents: page.Content.UpcomingEvents,
		Groups:         make([]groupView, 0, len(page.Groups)),
	}
	for _, g := range page.Groups {
		v.Groups = append(v.Groups, buildGroupView(g.Group, g.List.State()))
	}
	return v
}

func buildGroupView(g homepage.PaperGroup, st listing.State) groupView {
	gv := groupView{
		ID:          g.ID,
		Heading:     g.Heading,
		Count:       st.Total,
		Items:       make([]itemView, 0, len(st.Visible)),
		ShowToggle:  st.ShowToggle,
		ToggleLabel: st.ToggleLabel,
	}
	for _, rec := range st.Visible {
		gv.Items = append(gv.Items, itemView{
			Title:   rec.Title,
			Link:    rec.Link,
			Authors: rec.FormattedAuthors(),
			Year:    rec.Year,
		})
	}
	anchor := "#pub-" + g.ID
	if st.Expanded {
		gv.ToggleHref = "/" + anchor
	} else {
		gv.ToggleHref = ExpandedPath(g.ID) + anchor
	}
	return gv
}
