// Package config loads assetsym configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"assetsym/internal/catalog"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".assetsym.yaml"

// Config holds all assetsym configuration.
type Config struct {
	// Catalogs are the asset catalog roots to scan.
	Catalogs []string `yaml:"catalogs"`

	// Output configures the generated files.
	Output OutputConfig `yaml:"output"`

	// Symbols configures constant derivation.
	Symbols SymbolsConfig `yaml:"symbols"`

	// Filter restricts which resources get a symbol.
	Filter FilterConfig `yaml:"filter"`

	// Watch configures the regeneration watcher.
	Watch WatchConfig `yaml:"watch"`
}

// OutputConfig names the generated artifacts.
type OutputConfig struct {
	GoFile     string `yaml:"go_file"`
	Package    string `yaml:"package"`
	ObjCHeader string `yaml:"objc_header,omitempty"` // optional mirror header
}

// SymbolsConfig configures identifier derivation.
type SymbolsConfig struct {
	Prefix            string `yaml:"prefix"`
	DefaultVisibility string `yaml:"default_visibility"` // public or internal
}

// FilterConfig holds doublestar glob patterns matched against resource names.
type FilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Catalogs: []string{"catalog/Icons.xcassets"},
		Output: OutputConfig{
			GoFile:  "assets/assets.go",
			Package: "assets",
		},
		Symbols: SymbolsConfig{
			Prefix:            "ImageName",
			DefaultVisibility: string(catalog.VisibilityPublic),
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
	}
}

// Load reads configuration from a YAML file. A missing file at the default
// path yields DefaultConfig; a missing file at an explicit path is an
// error. Relative paths in the file are resolved against the file's
// directory, so the config works regardless of the invoking directory
// (go:generate runs in the directive's package, not the module root).
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := DefaultConfig()
			cfg.applyEnvOverrides()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.resolvePaths(filepath.Dir(path))
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// resolvePaths anchors relative paths at the config file's directory.
func (c *Config) resolvePaths(base string) {
	for i, dir := range c.Catalogs {
		c.Catalogs[i] = resolve(base, dir)
	}
	c.Output.GoFile = resolve(base, c.Output.GoFile)
	if c.Output.ObjCHeader != "" {
		c.Output.ObjCHeader = resolve(base, c.Output.ObjCHeader)
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ASSETSYM_CATALOGS"); v != "" {
		c.Catalogs = strings.Split(v, string(os.PathListSeparator))
	}
	if v := os.Getenv("ASSETSYM_OUTPUT"); v != "" {
		c.Output.GoFile = v
	}
	if v := os.Getenv("ASSETSYM_PACKAGE"); v != "" {
		c.Output.Package = v
	}
	if v := os.Getenv("ASSETSYM_PREFIX"); v != "" {
		c.Symbols.Prefix = v
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if len(c.Catalogs) == 0 {
		return fmt.Errorf("no catalogs configured")
	}
	if c.Output.GoFile == "" {
		return fmt.Errorf("output.go_file is required")
	}
	if c.Output.Package == "" {
		return fmt.Errorf("output.package is required")
	}
	if vis := catalog.Visibility(c.Symbols.DefaultVisibility); !vis.Valid() {
		return fmt.Errorf("symbols.default_visibility: unknown value %q", c.Symbols.DefaultVisibility)
	}
	return nil
}

// DefaultVisibility returns the configured visibility as a catalog value.
func (c *Config) DefaultVisibility() catalog.Visibility {
	return catalog.Visibility(c.Symbols.DefaultVisibility)
}

// GetDebounce returns the watch debounce window as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}
