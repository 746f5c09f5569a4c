package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"github.com/tesso57/akita-homepage/internal/infrastructure/content"
)

func TestWriteAtom(t *testing.T) {
	site := homepage.Site{Title: "Akita", BaseURL: "https://akitasim.dev"}
	updated := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := WriteAtom(&buf, site, fixtureContent(), updated); err != nil {
		t.Fatalf("WriteAtom() error = %v", err)
	}

	feed, err := gofeed.NewParser().Parse(&buf)
	if err != nil {
		t.Fatalf("parse atom: %v", err)
	}
	if feed.FeedType != "atom" {
		t.Errorf("FeedType = %q", feed.FeedType)
	}
	if feed.Title != "Akita publications" {
		t.Errorf("Title = %q", feed.Title)
	}
	if len(feed.Items) != 10 {
		t.Fatalf("items = %d, want 10", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Title != "Paper 1" || first.Link != "https://example.com/p1" {
		t.Errorf("first entry = %q %q", first.Title, first.Link)
	}
	if first.GUID != "https://akitasim.dev/publications/simulators/1" {
		t.Errorf("GUID = %q", first.GUID)
	}
	if first.UpdatedParsed == nil || first.UpdatedParsed.Year() != 2020 {
		t.Errorf("UpdatedParsed = %v", first.UpdatedParsed)
	}
	// Readers see the group heading; the id stays in the term attribute.
	if len(first.Categories) != 1 || first.Categories[0] != "Simulators" {
		t.Errorf("Categories = %v", first.Categories)
	}
	if len(first.Authors) != 1 || first.Authors[0].Name != "Ada Lovelace, Charles Babbage" {
		t.Errorf("Authors = %+v", first.Authors)
	}

	noLink := feed.Items[8]
	if noLink.Title != "Paper 2" || noLink.Link != "" {
		t.Errorf("entry without link = %q %q", noLink.Title, noLink.Link)
	}
	noYear := feed.Items[9]
	if noYear.UpdatedParsed == nil || !noYear.UpdatedParsed.Equal(updated) {
		t.Errorf("entry without year should use feed time, got %v", noYear.UpdatedParsed)
	}
	if got := noYear.Authors[0].Name; len(got) != 45 {
		t.Errorf("feed keeps full authors, got %q", got)
	}
}

func TestWriteAtom_DefaultContent(t *testing.T) {
	c, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteAtom(&buf, homepage.Site{Title: "Akita", BaseURL: "https://akitasim.dev"}, c, time.Now()); err != nil {
		t.Fatal(err)
	}
	feed, err := gofeed.NewParser().Parse(&buf)
	if err != nil {
		t.Fatalf("parse atom: %v", err)
	}
	if len(feed.Items) != len(c.Publications()) {
		t.Errorf("items = %d, want %d", len(feed.Items), len(c.Publications()))
	}
}
