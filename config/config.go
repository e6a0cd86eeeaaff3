package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TunerConfig locates the flrig XML-RPC endpoint.
type TunerConfig struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Timeout time.Duration `yaml:"timeout"`
}

// Addr returns host:port.
func (t TunerConfig) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// RefreshConfig controls live tracking.
type RefreshConfig struct {
	// Interval between frequency samples while tracking.
	Interval time.Duration `yaml:"interval"`

	// ReloadCron is a cron spec (e.g. "0 * * * *") for re-reading the schedule
	// file so the active-only filter follows the clock. Empty disables it.
	ReloadCron string `yaml:"reload_cron"`
}

// ScheduleConfig holds the load-time options for schedule files.
type ScheduleConfig struct {
	// Format is "auto", "a"/"eibi" or "b"/"ilg".
	Format     string `yaml:"format"`
	ActiveOnly bool   `yaml:"active_only"`
	Target     string `yaml:"target"`
	File       string `yaml:"file"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the top-level application configuration.
type Config struct {
	Tuner    TunerConfig    `yaml:"tuner"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Log      LogConfig      `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Tuner: TunerConfig{
			Host:    "127.0.0.1",
			Port:    12345,
			Timeout: 2 * time.Second,
		},
		Refresh: RefreshConfig{
			Interval: time.Second,
		},
		Schedule: ScheduleConfig{
			Format: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Normalize fills zero values with defaults and folds unknown enums back to
// their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(c.Tuner.Host) == "" {
		c.Tuner.Host = def.Tuner.Host
	}
	if c.Tuner.Port <= 0 || c.Tuner.Port > 65535 {
		c.Tuner.Port = def.Tuner.Port
	}
	if c.Tuner.Timeout <= 0 {
		c.Tuner.Timeout = def.Tuner.Timeout
	}
	if c.Refresh.Interval <= 0 {
		c.Refresh.Interval = def.Refresh.Interval
	}
	switch strings.ToLower(strings.TrimSpace(c.Schedule.Format)) {
	case "a", "eibi", "b", "ilg", "auto":
		c.Schedule.Format = strings.ToLower(strings.TrimSpace(c.Schedule.Format))
	default:
		c.Schedule.Format = def.Schedule.Format
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		c.Log.Level = def.Log.Level
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sftune.yaml"
	}
	return filepath.Join(dir, "siftly-tuner", "config.yaml")
}

// Load reads configuration from path. A missing file yields the defaults;
// nothing is written back.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
