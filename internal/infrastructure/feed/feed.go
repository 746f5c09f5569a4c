// Package feed fetches upcoming community events from RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"golang.org/x/sync/singleflight"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "AkitaHomepage/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FetchEvents parses the feed at url and maps its items to events, soonest
// first with undated events last. Items without a title or link are skipped.
func FetchEvents(ctx context.Context, url string) ([]homepage.Event, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	events := make([]homepage.Event, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		ev := homepage.Event{
			Title: strings.TrimSpace(item.Title),
			Link:  strings.TrimSpace(item.Link),
		}
		if item.PublishedParsed != nil {
			ev.Date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			ev.Date = *item.UpdatedParsed
		}
		if ev.Validate() != nil {
			continue
		}
		events = append(events, ev)
	}

	// Undated events go last.
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Date, events[j].Date
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
	return events, nil
}

// Fetcher fetches event feeds with a timeout and collapses concurrent
// fetches of the same URL into one request.
type Fetcher struct {
	Timeout time.Duration
	group   singleflight.Group
}

// NewFetcher returns a Fetcher with the given per-fetch timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Timeout: timeout}
}

// FetchEvents implements usecase.EventFetcher.
func (f *Fetcher) FetchEvents(ctx context.Context, url string) ([]homepage.Event, error) {
	v, err, _ := f.group.Do(url, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		if f.Timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, f.Timeout)
			defer cancel()
		}
		return FetchEvents(fetchCtx, url)
	})
	if err != nil {
		return nil, err
	}
	events, _ := v.([]homepage.Event)
	return append([]homepage.Event(nil), events...), nil
}
