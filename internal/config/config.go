package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/hazz-dev/netcheck/internal/checker"
	"github.com/hazz-dev/netcheck/internal/journal"
)

const (
	// DefaultWait is the delay between checks in iterate mode.
	DefaultWait = 5 * time.Minute
	// DefaultLogFile is the rotating log file used when none is configured.
	DefaultLogFile = "internet-check.log"
)

// Duration is a time.Duration that unmarshals from a YAML string like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// ByteSize is a byte count that unmarshals from a YAML value like "10kB",
// "1MiB" or a bare integer.
type ByteSize int64

func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*b = ByteSize(n)
	return nil
}

// JournalConfig holds log file and level settings.
type JournalConfig struct {
	Path    string          `yaml:"path"`
	MaxSize ByteSize        `yaml:"max_size"`
	Backups int             `yaml:"backups"`
	Levels  map[string]bool `yaml:"levels"`
}

// Config is the root application configuration.
type Config struct {
	Site      string        `yaml:"site"`
	Timeout   Duration      `yaml:"timeout"`
	Iterate   bool          `yaml:"iterate"`
	Wait      Duration      `yaml:"wait"`
	Heartbeat bool          `yaml:"heartbeat"`
	Journal   JournalConfig `yaml:"journal"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Site:    checker.DefaultTarget,
		Timeout: Duration{checker.DefaultTimeout},
		Wait:    Duration{DefaultWait},
		Journal: JournalConfig{
			Path:    DefaultLogFile,
			MaxSize: journal.DefaultMaxBytes,
			Backups: journal.DefaultBackupCount,
		},
	}
}

// Load reads, parses, and validates the config file at path. Keys missing
// from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into a raw intermediate so unset keys can be told apart from zero values.
	type rawJournal struct {
		Path    string          `yaml:"path"`
		MaxSize *ByteSize       `yaml:"max_size"`
		Backups *int            `yaml:"backups"`
		Levels  map[string]bool `yaml:"levels"`
	}
	type rawConfig struct {
		Site      string     `yaml:"site"`
		Timeout   *Duration  `yaml:"timeout"`
		Iterate   bool       `yaml:"iterate"`
		Wait      *Duration  `yaml:"wait"`
		Heartbeat bool       `yaml:"heartbeat"`
		Journal   rawJournal `yaml:"journal"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := Default()
	cfg.Iterate = raw.Iterate
	cfg.Heartbeat = raw.Heartbeat
	cfg.Journal.Levels = raw.Journal.Levels

	if raw.Site != "" {
		cfg.Site = raw.Site
	}
	if raw.Timeout != nil {
		cfg.Timeout = *raw.Timeout
	}
	if raw.Wait != nil {
		cfg.Wait = *raw.Wait
	}
	if raw.Journal.Path != "" {
		cfg.Journal.Path = raw.Journal.Path
	}
	if raw.Journal.MaxSize != nil {
		cfg.Journal.MaxSize = *raw.Journal.MaxSize
	}
	if raw.Journal.Backups != nil {
		cfg.Journal.Backups = *raw.Journal.Backups
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the probe cannot run with.
func (c *Config) Validate() error {
	if c.Site == "" {
		return fmt.Errorf("site is required")
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout.Duration)
	}
	if c.Wait.Duration < 0 {
		return fmt.Errorf("wait must not be negative, got %v", c.Wait.Duration)
	}
	if c.Journal.Path == "" {
		return fmt.Errorf("journal: path is required")
	}
	if c.Journal.Backups < 0 {
		return fmt.Errorf("journal: backups must not be negative, got %d", c.Journal.Backups)
	}
	if _, err := c.LevelOptions(); err != nil {
		return err
	}
	return nil
}

// LevelOptions converts the journal.levels map into journal options.
func (c *Config) LevelOptions() ([]journal.Option, error) {
	opts := make([]journal.Option, 0, len(c.Journal.Levels))
	for name, enabled := range c.Journal.Levels {
		level, err := journal.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}
		opts = append(opts, journal.WithLevel(level, enabled))
	}
	return opts, nil
}

// SetLevel records an enable flag for level, overriding the file's value.
func (c *Config) SetLevel(level journal.Level, enabled bool) {
	if c.Journal.Levels == nil {
		c.Journal.Levels = make(map[string]bool)
	}
	for name := range c.Journal.Levels {
		if l, err := journal.ParseLevel(name); err == nil && l == level {
			delete(c.Journal.Levels, name)
		}
	}
	c.Journal.Levels[level.String()] = enabled
}

// JournalOptions returns every journal option implied by the config.
func (c *Config) JournalOptions() ([]journal.Option, error) {
	opts, err := c.LevelOptions()
	if err != nil {
		return nil, err
	}
	return append(opts,
		journal.WithMaxBytes(int64(c.Journal.MaxSize)),
		journal.WithBackupCount(c.Journal.Backups),
	), nil
}
