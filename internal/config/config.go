// Package config provides configuration management for squadstats.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables.
const (
	EnvPrefix = "SQUADSTATS_"
	EnvConfig = "SQUADSTATS_CONFIG"
)

// View names.
const (
	ViewDense  = "dense"
	ViewDetail = "detail"
)

// Config holds the application configuration.
type Config struct {
	// Input
	StatsFile string `json:"stats_file" koanf:"stats_file"`

	// Initial view
	Section  string `json:"section" koanf:"section"`
	View     string `json:"view" koanf:"view"`           // "dense", "detail"
	ViewMode string `json:"view_mode" koanf:"view_mode"` // empty keeps each section's default

	// Output options
	OutputFormat string `json:"output_format" koanf:"output_format"` // "tui", "json", "markdown", "csv", "html"
	OutputFile   string `json:"output_file,omitempty" koanf:"output_file"`

	// Number display
	RoundCountStats bool            `json:"round_count_stats" koanf:"round_count_stats"`
	CompactNumbers  bool            `json:"compact_numbers" koanf:"compact_numbers"`
	HideZeroRows    map[string]bool `json:"hide_zero_rows,omitempty" koanf:"hide_zero_rows"`

	// Incoming starts the conditions section on conditions received.
	Incoming bool `json:"incoming" koanf:"incoming"`

	// UI options
	Theme string `json:"theme" koanf:"theme"`

	// Logging
	LogLevel string `json:"log_level" koanf:"log_level"`
	LogFile  string `json:"log_file,omitempty" koanf:"log_file"`

	// ConfigFile is the YAML file the configuration was layered from.
	ConfigFile string `json:"-" koanf:"-"`
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		Section:      string(catalog.DomainOffense),
		View:         ViewDense,
		OutputFormat: "tui",
		Theme:        "default",
		LogLevel:     "info",
	}
}

func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.StatsFile, "stats", c.StatsFile, "Aggregated stats file (.json, .yaml)")
	fs.StringVar(&c.Section, "section", c.Section, "Initial section (offense, defense, support, healing, mitigation, boons, conditions)")
	fs.StringVar(&c.View, "view", c.View, "Initial view (dense, detail)")
	fs.StringVar(&c.ViewMode, "mode", c.ViewMode, "View mode (total, per1s, per60s, uptime)")
	fs.StringVar(&c.OutputFormat, "format", c.OutputFormat, "Output format (tui, json, markdown, csv, html)")
	fs.StringVar(&c.OutputFile, "output", c.OutputFile, "Output file (defaults to stdout)")
	fs.BoolVar(&c.RoundCountStats, "round", c.RoundCountStats, "Show counts without decimals in total mode")
	fs.BoolVar(&c.CompactNumbers, "compact", c.CompactNumbers, "Abbreviate large numbers (12k, 1.5m)")
	fs.BoolVar(&c.Incoming, "incoming", c.Incoming, "Show incoming instead of outgoing conditions")
	fs.StringVar(&c.Theme, "theme", c.Theme, "Color theme (default, neon)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file (interactive mode logs nowhere without it)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file (or "+EnvConfig+")")
}

// ParseFlags layers configuration into c and validates it. Precedence, low
// to high: current values, the YAML file named by --config or
// SQUADSTATS_CONFIG, SQUADSTATS_* environment variables, explicit flags.
// A single positional argument is taken as the stats file.
func (c *Config) ParseFlags(args []string) error {
	first := flag.NewFlagSet("squadstats", flag.ContinueOnError)
	first.SetOutput(io.Discard)
	firstCfg := *c
	firstCfg.bindFlags(first)
	if err := first.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	path := firstCfg.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if err := c.loadLayers(path); err != nil {
		return err
	}
	c.ConfigFile = path

	fs := flag.NewFlagSet("squadstats", flag.ContinueOnError)
	c.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.StatsFile == "" && fs.NArg() > 0 {
		c.StatsFile = fs.Arg(0)
	}

	return c.Validate()
}

func (c *Config) loadLayers(path string) error {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// SQUADSTATS_LOG_LEVEL -> log_level, SQUADSTATS_HIDE_ZERO_ROWS__HEALING -> hide_zero_rows.healing
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	// The config path itself is not a setting.
	k.Delete("config")

	if err := k.UnmarshalWithConf("", c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.StatsFile == "" {
		return fmt.Errorf("no stats file given (use --stats)")
	}
	if _, err := os.Stat(c.StatsFile); os.IsNotExist(err) {
		return fmt.Errorf("stats file does not exist: %s", c.StatsFile)
	}

	if _, ok := catalog.ParseDomain(c.Section); !ok {
		return fmt.Errorf("invalid section: %s (valid: %s)", c.Section, domainList())
	}

	if c.View != ViewDense && c.View != ViewDetail {
		return fmt.Errorf("invalid view: %s (valid: dense, detail)", c.View)
	}

	if c.ViewMode != "" {
		if _, ok := pivot.ParseViewMode(c.ViewMode); !ok {
			return fmt.Errorf("invalid view mode: %s (valid: total, per1s, per60s, uptime)", c.ViewMode)
		}
	}

	validFormats := map[string]bool{
		"tui":      true,
		"json":     true,
		"markdown": true,
		"md":       true,
		"csv":      true,
		"html":     true,
	}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (valid: tui, json, markdown, csv, html)", c.OutputFormat)
	}
	if c.OutputFormat == "md" {
		c.OutputFormat = "markdown"
	}

	for name := range c.HideZeroRows {
		if _, ok := catalog.ParseDomain(name); !ok {
			return fmt.Errorf("invalid section in hide_zero_rows: %s", name)
		}
	}

	validThemes := map[string]bool{"default": true, "neon": true}
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme: %s (valid: default, neon)", c.Theme)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Interactive reports whether the TUI should run.
func (c *Config) Interactive() bool {
	return c.OutputFormat == "tui"
}

// Domain returns the configured initial section.
func (c *Config) Domain() catalog.Domain {
	d, _ := catalog.ParseDomain(c.Section)
	return d
}

// Mode returns the configured view mode, or "" for section defaults.
func (c *Config) Mode() pivot.ViewMode {
	m, _ := pivot.ParseViewMode(c.ViewMode)
	return m
}

// HideZeroRowOverrides converts the per-section overrides.
func (c *Config) HideZeroRowOverrides() map[catalog.Domain]bool {
	out := make(map[catalog.Domain]bool, len(c.HideZeroRows))
	for name, hide := range c.HideZeroRows {
		if d, ok := catalog.ParseDomain(name); ok {
			out[d] = hide
		}
	}
	return out
}

func domainList() string {
	names := make([]string, 0, len(catalog.Domains()))
	for _, d := range catalog.Domains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
