// Package homepage defines the content shown on the project homepage.
package homepage

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tesso57/akita-homepage/internal/domain/listing"
)

var groupIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Site carries the hero banner and page-level metadata.
type Site struct {
	Title     string
	Tagline   string
	AkitaLink string
	LogoPath  string
	BaseURL   string
}

// Feature is one highlight card.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image,omitempty"`
}

// Simulator is one sibling simulator card.
type Simulator struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image,omitempty"`
}

// Event is a community event.
type Event struct {
	Title string    `yaml:"title"`
	Link  string    `yaml:"link"`
	Date  time.Time `yaml:"date,omitempty"`
}

// PaperGroup is one publication column.
type PaperGroup struct {
	ID      string           `yaml:"id"`
	Heading string           `yaml:"heading"`
	Papers  []listing.Record `yaml:"papers"`
}

// Count returns the number of papers in the group.
func (g PaperGroup) Count() int { return len(g.Papers) }

// Content is everything rendered below the hero banner.
type Content struct {
	Features       []Feature    `yaml:"features"`
	Simulators     []Simulator  `yaml:"simulators"`
	Events         []Event      `yaml:"events"`
	UpcomingEvents []Event      `yaml:"upcoming_events"`
	PaperGroups    []PaperGroup `yaml:"paper_groups"`
}

// Group returns the paper group with the given id.
func (c Content) Group(id string) (PaperGroup, bool) {
	for _, g := range c.PaperGroups {
		if g.ID == id {
			return g, true
		}
	}
	return PaperGroup{}, false
}

// Publications returns every paper across groups, in group order.
func (c Content) Publications() []listing.Record {
	var out []listing.Record
	for _, g := range c.PaperGroups {
		out = append(out, g.Papers...)
	}
	return out
}

// Validate reports every problem found in the content.
func (c Content) Validate() error {
	var errs []error
	for i, f := range c.Features {
		if strings.TrimSpace(f.Title) == "" {
			errs = append(errs, fmt.Errorf("feature %d: %w: title is required", i, listing.ErrInvalidInput))
		}
	}
	for i, s := range c.Simulators {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("simulator %d: %w: title is required", i, listing.ErrInvalidInput))
		}
	}
	for i, e := range c.Events {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
		}
	}
	for i, e := range c.UpcomingEvents {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("upcoming event %d: %w", i, err))
		}
	}
	seen := make(map[string]bool, len(c.PaperGroups))
	for i, g := range c.PaperGroups {
		if !groupIDPattern.MatchString(g.ID) {
			errs = append(errs, fmt.Errorf("paper group %d: %w: id %q is not a slug", i, listing.ErrInvalidInput, g.ID))
		} else if seen[g.ID] {
			errs = append(errs, fmt.Errorf("paper group %d: %w: duplicate id %q", i, listing.ErrInvalidInput, g.ID))
		}
		seen[g.ID] = true
		for j, p := range g.Papers {
			if err := p.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("paper group %q paper %d: %w", g.ID, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the event has a title and an absolute link.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", listing.ErrInvalidInput)
	}
	u, err := url.Parse(e.Link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: link %q for %q is not an absolute URL", listing.ErrInvalidInput, e.Link, e.Title)
	}
	return nil
}
