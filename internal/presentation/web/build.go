package web

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"time"

	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BuildResult lists the files a build wrote, relative to the output directory.
type BuildResult struct {
	Files []string
}

// Build renders the site into outDir: the collapsed homepage, one expanded
// page per group that toggles, the Atom feed, and the static assets.
func Build(ctx context.Context, svc usecase.HomepageService, outDir string, logger *zap.Logger) (BuildResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outDir == "" {
		return BuildResult{}, fmt.Errorf("build: output directory is empty")
	}
	renderer, err := NewRenderer()
	if err != nil {
		return BuildResult{}, err
	}

	c, report, err := svc.Load(ctx)
	if err != nil {
		return BuildResult{}, err
	}
	if report.EventsErr != nil {
		logger.Warn("upcoming events unavailable", zap.Error(report.EventsErr))
	}

	index, err := svc.Mount(c)
	if err != nil {
		return BuildResult{}, err
	}

	pages := map[string]*usecase.Page{"index.html": index}
	for _, g := range index.Groups {
		if !g.List.ShowToggle() {
			continue
		}
		expanded, err := svc.Mount(c, g.Group.ID)
		if err != nil {
			return BuildResult{}, err
		}
		pages[path.Join("publications", g.Group.ID, "index.html")] = expanded
	}

	var files []string
	for name := range pages {
		files = append(files, name)
	}
	files = append(files, "feed.xml")
	slices.Sort(files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for name, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := renderer.Render(&buf, page); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return writeFile(outDir, name, buf.Bytes())
		})
	}
	g.Go(func() error {
		var buf bytes.Buffer
		if err := WriteAtom(&buf, svc.Site, c, time.Now()); err != nil {
			return err
		}
		return writeFile(outDir, "feed.xml", buf.Bytes())
	})
	g.Go(func() error {
		static, err := copyStatic(outDir)
		if err != nil {
			return err
		}
		logger.Debug("static assets copied", zap.Int("files", static))
		return nil
	})
	if err := g.Wait(); err != nil {
		return BuildResult{}, fmt.Errorf("build: %w", err)
	}

	logger.Info("site built",
		zap.String("out", outDir),
		zap.Int("pages", len(pages)),
		zap.Int("publications", len(c.Publications())))
	return BuildResult{Files: files}, nil
}

func writeFile(outDir, name string, data []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

func copyStatic(outDir string) (int, error) {
	n := 0
	err := fs.WalkDir(Static(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(Static(), name)
		if err != nil {
			return err
		}
		n++
		return writeFile(outDir, path.Join("static", name), data)
	})
	return n, err
}
