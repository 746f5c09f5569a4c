// Package content loads homepage content from YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"gopkg.in/yaml.v3"
)

// defaultContent is the content shipped with the binary.
//
//go:embed default_content.yaml
var defaultContent []byte

// Repository reads homepage content from a YAML file, or from the embedded
// default when no path is set.
type Repository struct {
	path string
}

// NewRepository creates a repository for path. An empty path selects the
// embedded default content.
func NewRepository(path string) *Repository {
	return &Repository{path: strings.TrimSpace(path)}
}

// Path returns the backing file, or "" for embedded content.
func (r *Repository) Path() string { return r.path }

// Load reads and validates the content.
func (r *Repository) Load() (homepage.Content, error) {
	if r.path == "" {
		return Default()
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return homepage.Content{}, fmt.Errorf("read content: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return homepage.Content{}, fmt.Errorf("%s: %w", r.path, err)
	}
	return c, nil
}

// Default returns the embedded content.
func Default() (homepage.Content, error) {
	return Parse(defaultContent)
}

// Parse decodes YAML content and validates it. Unknown keys are rejected.
func Parse(data []byte) (homepage.Content, error) {
	var c homepage.Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return homepage.Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return homepage.Content{}, err
	}
	return c, nil
}
