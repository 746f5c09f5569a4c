package web

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/tesso57/akita-homepage/internal/domain/homepage"
)

type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomPerson struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term  string `xml:"term,attr"`
	Label string `xml:"label,attr,omitempty"`
}

type atomEntry struct {
	Title    string        `xml:"title"`
	ID       string        `xml:"id"`
	Updated  string        `xml:"updated"`
	Links    []atomLink    `xml:"link,omitempty"`
	Authors  []atomPerson  `xml:"author"`
	Category *atomCategory `xml:"category,omitempty"`
}

// WriteAtom writes every publication as an Atom entry. Entries without a
// year use updated as their timestamp.
func WriteAtom(w io.Writer, site homepage.Site, c homepage.Content, updated time.Time) error {
	stamp := updated.UTC().Format(time.RFC3339)
	feed := atomFeed{
		Title:   site.Title + " publications",
		ID:      site.BaseURL + "/feed.xml",
		Updated: stamp,
		Links: []atomLink{
			{Href: site.BaseURL + "/", Rel: "alternate", Type: "text/html"},
			{Href: site.BaseURL + "/feed.xml", Rel: "self", Type: "application/atom+xml"},
		},
	}

	for _, g := range c.PaperGroups {
		for i, p := range g.Papers {
			entry := atomEntry{
				Title:    p.Title,
				ID:       fmt.Sprintf("%s/publications/%s/%d", site.BaseURL, g.ID, i+1),
				Updated:  stamp,
				Authors:  []atomPerson{{Name: p.Authors}},
				Category: &atomCategory{Term: g.ID, Label: g.Heading},
			}
			if p.HasYear() {
				entry.Updated = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
			}
			if p.HasLink() {
				entry.Links = []atomLink{{Href: p.Link, Rel: "alternate"}}
			}
			feed.Entries = append(feed.Entries, entry)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("encode atom: %w", err)
	}
	return enc.Flush()
}
