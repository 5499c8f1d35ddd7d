// Package config loads gridil.yaml: search budgets, the archive
// location, the remote library address, and the serve endpoint. Every
// field has a default so the solver runs without any file present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level gridil.yaml document.
type Config struct {
	Search  Search  `yaml:"search,omitempty"`
	Archive Archive `yaml:"archive,omitempty"`
	Library Library `yaml:"library,omitempty"`
	Serve   Serve   `yaml:"serve,omitempty"`
}

// Search bounds the solver. A zero MaxDepth together with a zero
// Timeout falls back to the default depth so every run is bounded.
type Search struct {
	// MaxDepth is the deepest hypothesis length tried.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Timeout caps one solve, e.g. "30s". Zero means no time cap.
	Timeout Duration `yaml:"timeout,omitempty"`

	// ProgressInterval spaces progress reports, e.g. "500ms".
	ProgressInterval Duration `yaml:"progress_interval,omitempty"`
}

// Archive locates the solution database.
type Archive struct {
	// Path is the sqlite file, created on first use.
	Path string `yaml:"path,omitempty"`
}

// Library selects where primitives come from.
type Library struct {
	// Address of a remote library server. Empty runs the in-process
	// standard library.
	Address string `yaml:"address,omitempty"`
}

// Serve configures the library server endpoint.
type Serve struct {
	Address string `yaml:"address,omitempty"`
}

// Duration decodes Go duration strings ("30s", "500ms") from yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the plain time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no gridil.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads and parses a gridil.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses gridil.yaml content. The path argument is used only for
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find searches for gridil.yaml starting from dir and walking up to
// parent directories. Returns "" with a nil error when no file exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"gridil.yaml", "gridil.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) setDefaults() {
	if c.Search.MaxDepth == 0 && c.Search.Timeout == 0 {
		c.Search.MaxDepth = 3
	}
	if c.Search.ProgressInterval == 0 {
		c.Search.ProgressInterval = Duration(500 * time.Millisecond)
	}
	if c.Archive.Path == "" {
		c.Archive.Path = "gridil.db"
	}
	if c.Serve.Address == "" {
		c.Serve.Address = ":9090"
	}
}

func (c *Config) validate(path string) error {
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%s: search.max_depth cannot be negative", path)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%s: search.timeout cannot be negative", path)
	}
	if c.Search.ProgressInterval < 0 {
		return fmt.Errorf("%s: search.progress_interval cannot be negative", path)
	}
	return nil
}
