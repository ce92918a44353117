package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Config holds all settings of one run. It is filled in before the walk
// starts and never changed afterwards.
type Config struct {
	// Root to display
	Path string

	// Tree settings
	MaxDepth          int // 0 = unlimited; 1 = root only
	ShowHidden        bool
	DirsOnly          bool
	WithColor         bool
	ASCIIOnly         bool
	Sort              bool
	RespectIgnoreFile bool
	CustomIgnore      []string

	// Output settings
	OutputFile  string
	Report      bool
	ShowSkipped bool

	// Logging settings
	Verbose  bool
	LogLevel string
}

// Default returns a Config with the tool's default behavior:
// sorted, colored, honoring the root .gitignore, hidden entries skipped
func Default() *Config {
	return &Config{
		Path:              ".",
		WithColor:         true,
		Sort:              true,
		RespectIgnoreFile: true,
		LogLevel:          "warn",
	}
}

// fileConfig is the on-disk YAML shape. Pointers tell "unset" from "false".
type fileConfig struct {
	Level           *int     `yaml:"level"`
	All             *bool    `yaml:"all"`
	DirectoriesOnly *bool    `yaml:"directories_only"`
	NoColor         *bool    `yaml:"no_color"`
	ASCII           *bool    `yaml:"ascii"`
	NoSorting       *bool    `yaml:"no_sorting"`
	ShowGitignore   *bool    `yaml:"show_gitignore"`
	Ignore          []string `yaml:"ignore"`
	Report          *bool    `yaml:"report"`
	LogLevel        string   `yaml:"log_level"`
}

// DefaultPath returns the per-user config file location, or "" if the
// platform has no config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dir-tree", "config.yaml")
}

// Load reads the YAML config file at path on top of the defaults.
// If the file doesn't exist, returns the defaults without error.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse config file %q: %w", path, err)
	}

	fc.apply(cfg)
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.Level != nil {
		cfg.MaxDepth = *fc.Level
	}
	if fc.All != nil {
		cfg.ShowHidden = *fc.All
	}
	if fc.DirectoriesOnly != nil {
		cfg.DirsOnly = *fc.DirectoriesOnly
	}
	if fc.NoColor != nil {
		cfg.WithColor = !*fc.NoColor
	}
	if fc.ASCII != nil {
		cfg.ASCIIOnly = *fc.ASCII
	}
	if fc.NoSorting != nil {
		cfg.Sort = !*fc.NoSorting
	}
	// Inverted like the flag: showing ignored entries turns the file off
	if fc.ShowGitignore != nil {
		cfg.RespectIgnoreFile = !*fc.ShowGitignore
	}
	if len(fc.Ignore) > 0 {
		cfg.CustomIgnore = append(cfg.CustomIgnore, fc.Ignore...)
	}
	if fc.Report != nil {
		cfg.Report = *fc.Report
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}

// Validate checks the settings that cannot be expressed by the types
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("config: path must not be empty")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: level must be a positive integer, got %d", c.MaxDepth)
	}
	return nil
}

// Colorize reports whether emphasis codes should be written to the tree
// output: colors are wanted, output goes to stdout and stdout is a terminal
func (c *Config) Colorize(stdout *os.File) bool {
	if !c.WithColor || c.OutputFile != "" || stdout == nil {
		return false
	}
	fd := stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EffectiveLogLevel resolves --verbose against the configured level
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}
