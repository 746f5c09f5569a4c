// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"github.com/tesso57/akita-homepage/internal/domain/listing"
)

// ErrUnknownGroup is returned when a paper group id does not exist.
var ErrUnknownGroup = errors.New("unknown paper group")

// ContentRepository abstracts where homepage content comes from.
type ContentRepository interface {
	Load() (homepage.Content, error)
}

// EventFetcher abstracts fetching upcoming events from a feed.
type EventFetcher interface {
	FetchEvents(ctx context.Context, url string) ([]homepage.Event, error)
}

// LoadReport summarizes the optional parts of a content load.
type LoadReport struct {
	UpcomingEvents int
	EventsErr      error
}

// GroupList pairs a paper group with the list mounted for it.
type GroupList struct {
	Group homepage.PaperGroup
	List  *listing.ExpandableList
}

// Page is a mounted homepage. Its lists belong to a single view.
type Page struct {
	Site    homepage.Site
	Content homepage.Content
	Groups  []GroupList
}

// List returns the mounted list for a paper group.
func (p *Page) List(id string) (*listing.ExpandableList, bool) {
	for _, g := range p.Groups {
		if g.Group.ID == id {
			return g.List, true
		}
	}
	return nil, false
}

// HomepageService loads content and mounts pages.
type HomepageService struct {
	Content       ContentRepository
	Events        EventFetcher
	Site          homepage.Site
	EventsFeedURL string
	Threshold     int
}

// NewHomepageService constructs a HomepageService.
func NewHomepageService(repo ContentRepository, events EventFetcher, site homepage.Site, eventsFeedURL string, threshold int) HomepageService {
	return HomepageService{
		Content:       repo,
		Events:        events,
		Site:          site,
		EventsFeedURL: strings.TrimSpace(eventsFeedURL),
		Threshold:     threshold,
	}
}

// Load reads content and, when a feed is configured, adds the feed's events
// to the upcoming list. Feed dates are announcement dates, so nothing is
// dropped for being in the past. A feed failure is reported, not returned,
// so the page still renders.
func (s HomepageService) Load(ctx context.Context) (homepage.Content, LoadReport, error) {
	var report LoadReport
	if s.Content == nil {
		return homepage.Content{}, report, errors.New("content repository is not configured")
	}
	c, err := s.Content.Load()
	if err != nil {
		return homepage.Content{}, report, err
	}

	if s.EventsFeedURL != "" && s.Events != nil {
		fetched, err := s.Events.FetchEvents(ctx, s.EventsFeedURL)
		if err != nil {
			report.EventsErr = fmt.Errorf("fetch upcoming events: %w", err)
		} else {
			c.UpcomingEvents = mergeEvents(c.UpcomingEvents, fetched)
		}
	}
	report.UpcomingEvents = len(c.UpcomingEvents)
	return c, report, nil
}

// Mount creates fresh collapsed lists for every paper group, then expands
// the groups named in expand.
func (s HomepageService) Mount(c homepage.Content, expand ...string) (*Page, error) {
	threshold := s.Threshold
	if threshold == 0 {
		threshold = listing.DefaultThreshold
	}

	page := &Page{
		Site:    s.Site,
		Content: c,
		Groups:  make([]GroupList, 0, len(c.PaperGroups)),
	}
	for _, g := range c.PaperGroups {
		l, err := listing.New(g.Papers, listing.WithThreshold(threshold))
		if err != nil {
			return nil, fmt.Errorf("paper group %q: %w", g.ID, err)
		}
		page.Groups = append(page.Groups, GroupList{Group: g, List: l})
	}

	for _, id := range expand {
		l, ok := page.List(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, id)
		}
		if !l.Expanded() {
			l.Toggle()
		}
	}
	return page, nil
}

// mergeEvents appends fetched events whose link is not already listed.
func mergeEvents(existing, fetched []homepage.Event) []homepage.Event {
	out := slices.Clone(existing)
	for _, ev := range fetched {
		if slices.ContainsFunc(out, func(e homepage.Event) bool { return e.Link == ev.Link }) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
