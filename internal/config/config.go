package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Content    ContentConfig    `yaml:"content"`
	Sections   []SectionConfig  `yaml:"sections"`
	Search     SearchConfig     `yaml:"search"`
	Server     ServerConfig     `yaml:"server"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	History    HistoryConfig    `yaml:"history"`
}

// ContentConfig describes where content files live and how pages are addressed.
type ContentConfig struct {
	Root       string `yaml:"root"`                  // Directory holding one subdirectory per section
	Extension  string `yaml:"extension"`             // Recognized content file extension, including the dot
	BasePath   string `yaml:"base_path"`             // URL prefix for page hrefs
	EditPrefix string `yaml:"edit_prefix,omitempty"` // Repository-relative prefix used for edit links
}

// SectionConfig maps a section directory to its display label. The order of
// the Sections list is the navigation priority order.
type SectionConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// SearchConfig tunes the full-text lookup.
type SearchConfig struct {
	Limit          int `yaml:"limit"`
	MinQueryLength int `yaml:"min_query_length"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// MonitoringConfig configures health and metrics endpoints.
type MonitoringConfig struct {
	HealthPath string            `yaml:"health_path"`
	Metrics    MonitoringMetrics `yaml:"metrics"`
}

// MonitoringMetrics configures the Prometheus endpoint.
type MonitoringMetrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// HistoryConfig controls git-derived "last updated" metadata.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load loads configuration from the specified file. Environment variables
// referenced as ${VAR} are expanded before decoding; variables from .env
// files are loaded first without overriding the process environment.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.ConfigError("configuration file not found").
				WithCause(err).
				WithContext("path", configPath).
				Build()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := base()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, derrors.ConfigError("failed to unmarshal config").WithCause(err).Build()
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when it exists and falls back to Default otherwise.
func LoadOrDefault(configPath string) (*Config, bool, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		loadEnvFiles()
		return Default(), false, nil
	}
	cfg, err := Load(configPath)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Init creates a new configuration file populated with the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# docsite configuration\n# Sections are listed in navigation order.\n")
	if err := os.WriteFile(configPath, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SectionLabels returns the id-to-label mapping.
func (c *Config) SectionLabels() map[string]string {
	labels := make(map[string]string, len(c.Sections))
	for _, s := range c.Sections {
		labels[s.ID] = s.Label
	}
	return labels
}

// SectionOrder returns the configured section ids in priority order.
func (c *Config) SectionOrder() []string {
	order := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		order = append(order, s.ID)
	}
	return order
}
