// Package config loads and saves the tagsift configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides ConfigPath.
const EnvPath = "TAGSIFT_CONFIG"

// Config is the persistent application configuration
type Config struct {
	Search  SearchConfig   `json:"search" yaml:"search"`
	Keys    KeyConfig      `json:"keys" yaml:"keys"`
	Store   StoreConfig    `json:"store" yaml:"store"`
	Fetch   FetchConfig    `json:"fetch" yaml:"fetch"`
	Sources []SourceConfig `json:"sources" yaml:"sources"`
	UI      UIConfig       `json:"ui" yaml:"ui"`
}

// SearchConfig tunes tag search and highlighting.
type SearchConfig struct {
	Limit          int    `json:"limit" yaml:"limit"`   // max results per query
	Locale         string `json:"locale" yaml:"locale"` // BCP 47 tag used for case folding
	HighlightOpen  string `json:"highlight_open" yaml:"highlight_open"`
	HighlightClose string `json:"highlight_close" yaml:"highlight_close"`
}

// KeyConfig holds the single-key bindings of the browse view.
type KeyConfig struct {
	Mark  string `json:"mark" yaml:"mark"`
	Hide  string `json:"hide" yaml:"hide"`
	Reset string `json:"reset" yaml:"reset"`
	Debug string `json:"debug" yaml:"debug"`
}

// StoreConfig locates the item catalog.
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// FetchConfig throttles remote sources.
type FetchConfig struct {
	TimeoutSeconds int     `json:"timeout_seconds" yaml:"timeout_seconds"`
	RatePerSecond  float64 `json:"rate_per_second" yaml:"rate_per_second"`
	Burst          int     `json:"burst" yaml:"burst"`
}

// SourceConfig describes one item source loaded at browse time.
type SourceConfig struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"` // "rss" or "html"
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Layout string `json:"layout,omitempty" yaml:"layout,omitempty"` // html only: "", "layout1", "layout2"
}

// Location returns the file path or URL the source reads from.
func (s SourceConfig) Location() string {
	if s.Path != "" {
		return s.Path
	}
	return s.URL
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme         string `json:"theme" yaml:"theme"`
	AnimateScroll bool   `json:"animate_scroll" yaml:"animate_scroll"`
	WatchSources  bool   `json:"watch_sources" yaml:"watch_sources"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Limit:          6,
			Locale:         "tr",
			HighlightOpen:  "<strong>",
			HighlightClose: "</strong>",
		},
		Keys: KeyConfig{
			Mark:  "2",
			Hide:  "1",
			Reset: "ctrl+r",
			Debug: "ctrl+d",
		},
		Store: StoreConfig{
			DBPath: filepath.Join(DataDir(), "tagsift.db"),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
			RatePerSecond:  2,
			Burst:          1,
		},
		Sources: []SourceConfig{},
		UI: UIConfig{
			Theme:         "dark",
			AnimateScroll: true,
		},
	}
}

// DataDir returns ~/.tagsift.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tagsift")
}

// ConfigPath returns the path to the config file. TAGSIFT_CONFIG wins over
// the default location.
func ConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from path (ConfigPath when empty). A missing file yields
// defaults. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes config to path (ConfigPath when empty), choosing the format
// from the file extension.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the engine cannot work with.
func (c *Config) Validate() error {
	if c.Search.Limit < 0 {
		return fmt.Errorf("search.limit must not be negative, got %d", c.Search.Limit)
	}
	if c.Keys.Mark != "" && c.Keys.Mark == c.Keys.Hide {
		return fmt.Errorf("keys.mark and keys.hide are both %q", c.Keys.Mark)
	}
	for i, s := range c.Sources {
		switch s.Kind {
		case "rss", "html":
		default:
			return fmt.Errorf("sources[%d]: unknown kind %q", i, s.Kind)
		}
		if s.Location() == "" {
			return fmt.Errorf("sources[%d]: url or path required", i)
		}
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
