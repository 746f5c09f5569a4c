// Package settings defines application-level configuration data.
package settings

import "time"

// SiteConfig defines the hero banner and page metadata.
type SiteConfig struct {
	Title     string `yaml:"title" kong:"help='Site title',default='Akita'"`
	Tagline   string `yaml:"tagline" kong:"help='Hero tagline',default='Computer Architecture Simulation Framework'"`
	AkitaLink string `yaml:"akita_link" kong:"help='Link behind the hero logo',default='https://github.com/sarchlab/akita'"`
	LogoPath  string `yaml:"logo_path" kong:"help='Hero logo path',default='/static/img/akita-logo.svg'"`
	BaseURL   string `yaml:"base_url" kong:"help='Public base URL used in the Atom feed',default='https://akitasim.dev'"`
}

// ContentConfig defines where homepage content comes from.
type ContentConfig struct {
	Path      string `yaml:"path" kong:"help='Content YAML file (embedded default when empty)'"`
	Threshold int    `yaml:"threshold" kong:"help='Publications shown before Show more',default='5'"`
}

// EventsConfig defines the optional upcoming-events feed.
type EventsConfig struct {
	FeedURL        string `yaml:"feed_url" kong:"help='RSS/Atom feed of upcoming community events'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Events feed timeout in seconds',default='10'"`
}

// Timeout returns the events feed timeout.
func (e EventsConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// ServerConfig defines the HTTP server.
type ServerConfig struct {
	Addr                string `yaml:"addr" kong:"help='Listen address',default=':8080'"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" kong:"help='Read timeout in seconds',default='5'"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" kong:"help='Write timeout in seconds',default='15'"`
	Watch               bool   `yaml:"watch" kong:"help='Reload content when the content file changes',default='false'"`
}

// ReadTimeout returns the server read timeout.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// BuildConfig defines the static build.
type BuildConfig struct {
	OutDir string `yaml:"out_dir" kong:"help='Static build output directory',default='build'"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level       string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
	Development bool   `yaml:"development" kong:"help='Human-readable console logs',default='false'"`
}

// KeyMapConfig defines the configuration for preview keybindings.
type KeyMapConfig struct {
	Up     string `yaml:"up" kong:"help='Up key',default='k'"`
	Down   string `yaml:"down" kong:"help='Down key',default='j'"`
	Toggle string `yaml:"toggle" kong:"help='Show more/less key',default='enter'"`
	Scroll string `yaml:"scroll" kong:"help='Scroll section key',default='space'"`
	Top    string `yaml:"top" kong:"help='Top key',default='g'"`
	Open   string `yaml:"open" kong:"help='Open in browser key',default='o'"`
	Quit   string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the preview color theme.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// Settings represents the application configuration.
type Settings struct {
	Site    SiteConfig    `yaml:"site" kong:"embed,prefix='site.'"`
	Content ContentConfig `yaml:"content" kong:"embed,prefix='content.'"`
	Events  EventsConfig  `yaml:"events" kong:"embed,prefix='events.'"`
	Server  ServerConfig  `yaml:"server" kong:"embed,prefix='server.'"`
	Build   BuildConfig   `yaml:"build" kong:"embed,prefix='build.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
	KeyMap  KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme   ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
}
