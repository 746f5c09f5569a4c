package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/tesso57/akita-homepage/internal/application/settings"
)

func TestCLIParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli CLI)
	}{
		{
			name:    "build with out",
			args:    []string{"build", "--out", "site"},
			command: "build",
			check: func(t *testing.T, cli CLI) {
				if !strings.HasSuffix(cli.Build.Out, "site") {
					t.Errorf("Out = %q", cli.Build.Out)
				}
			},
		},
		{
			name:    "serve with watch",
			args:    []string{"--config", "cfg.yaml", "serve", "--addr", ":9090", "--watch"},
			command: "serve",
			check: func(t *testing.T, cli CLI) {
				if cli.Serve.Addr != ":9090" || !cli.Serve.Watch {
					t.Errorf("Serve = %+v", cli.Serve)
				}
				if !filepath.IsAbs(cli.Config) {
					t.Errorf("Config should resolve to an absolute path, got %q", cli.Config)
				}
			},
		},
		{
			name:    "preview",
			args:    []string{"preview"},
			command: "preview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli, kong.Name("akita-homepage"))
			if err != nil {
				t.Fatal(err)
			}
			kctx, err := parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if kctx.Command() != tt.command {
				t.Errorf("Command() = %q, want %q", kctx.Command(), tt.command)
			}
			if tt.check != nil {
				tt.check(t, cli)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger(settings.LogConfig{Level: "debug", Development: true}); err != nil {
		t.Errorf("newLogger() error = %v", err)
	}
	if _, err := newLogger(settings.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}

	out := filepath.Join(t.TempDir(), "preview.log")
	logger, err := newLogger(settings.LogConfig{Level: "info"}, out)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestBuildCmd(t *testing.T) {
	dir := t.TempDir()
	app, err := newApp(filepath.Join(dir, "config.yaml"), false)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	out := filepath.Join(dir, "out")
	if err := (&BuildCmd{Out: out}).Run(app); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, name := range []string{"index.html", "feed.xml", "publications/uses/index.html"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("defaults file not written: %v", err)
	}
}
