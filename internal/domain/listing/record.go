// Package listing defines publication records and the expandable list that
// shows a prefix of them.
package listing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput is returned when records or list options are malformed.
var ErrInvalidInput = errors.New("invalid input")

// MaxAuthorsLength is the number of characters shown before authors are cut.
const MaxAuthorsLength = 40

// Ellipsis marks a truncated author string.
const Ellipsis = "..."

// Record is one publication or event entry.
type Record struct {
	Title   string `yaml:"title"`
	Authors string `yaml:"authors"`
	Link    string `yaml:"link,omitempty"`
	Year    int    `yaml:"year,omitempty"`
}

// HasLink reports whether the title should render as a hyperlink.
func (r Record) HasLink() bool { return r.Link != "" }

// HasYear reports whether a year label should be shown.
func (r Record) HasYear() bool { return r.Year > 0 }

// FormattedAuthors returns the author string as it is displayed.
func (r Record) FormattedAuthors() string { return FormatAuthors(r.Authors) }

// Validate checks the required fields and the optional link.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Authors) == "" {
		return fmt.Errorf("%w: authors are required for %q", ErrInvalidInput, r.Title)
	}
	if r.Year < 0 {
		return fmt.Errorf("%w: negative year %d for %q", ErrInvalidInput, r.Year, r.Title)
	}
	if r.Link != "" {
		u, err := url.Parse(r.Link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: link %q for %q is not an absolute http(s) URL", ErrInvalidInput, r.Link, r.Title)
		}
	}
	return nil
}

// FormatAuthors cuts s to MaxAuthorsLength characters and appends Ellipsis
// when it is longer. The cut ignores word boundaries.
func FormatAuthors(s string) string {
	if utf8.RuneCountInString(s) <= MaxAuthorsLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxAuthorsLength {
			return s[:i] + Ellipsis
		}
		n++
	}
	return s
}
