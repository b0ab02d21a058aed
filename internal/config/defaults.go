package config

import "time"

const (
	DefaultContentRoot     = "content/docs"
	DefaultExtension       = ".mdx"
	DefaultBasePath        = "/docs"
	DefaultSearchLimit     = 8
	DefaultMinQueryLength  = 2
	DefaultAddr            = ":3000"
	DefaultHealthPath      = "/health"
	DefaultMetricsPath     = "/metrics"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// DefaultSections is the navigation order and labelling of the design system docs.
func DefaultSections() []SectionConfig {
	return []SectionConfig{
		{ID: "getting-started", Label: "Getting Started"},
		{ID: "foundations", Label: "Foundations"},
		{ID: "components", Label: "Components"},
		{ID: "patterns", Label: "Patterns"},
		{ID: "resources", Label: "Resources"},
	}
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	cfg := base()
	applyDefaults(cfg)
	return cfg
}

// base holds the defaults that cannot be inferred from zero values.
func base() *Config {
	return &Config{
		Monitoring: MonitoringConfig{Metrics: MonitoringMetrics{Enabled: true}},
		History:    HistoryConfig{Enabled: true},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Content.Root == "" {
		cfg.Content.Root = DefaultContentRoot
	}
	if cfg.Content.Extension == "" {
		cfg.Content.Extension = DefaultExtension
	}
	if cfg.Content.Extension[0] != '.' {
		cfg.Content.Extension = "." + cfg.Content.Extension
	}
	if cfg.Content.BasePath == "" {
		cfg.Content.BasePath = DefaultBasePath
	}
	if cfg.Content.EditPrefix == "" {
		cfg.Content.EditPrefix = cfg.Content.Root
	}
	if cfg.Sections == nil {
		cfg.Sections = DefaultSections()
	}
	for i := range cfg.Sections {
		if cfg.Sections[i].Label == "" {
			cfg.Sections[i].Label = cfg.Sections[i].ID
		}
	}

	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = DefaultSearchLimit
	}
	if cfg.Search.MinQueryLength == 0 {
		cfg.Search.MinQueryLength = DefaultMinQueryLength
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Monitoring.HealthPath == "" {
		cfg.Monitoring.HealthPath = DefaultHealthPath
	}
	if cfg.Monitoring.Metrics.Path == "" {
		cfg.Monitoring.Metrics.Path = DefaultMetricsPath
	}
}
