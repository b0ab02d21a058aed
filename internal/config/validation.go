package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Validate checks the configuration for values that would make the pipeline
// misbehave. Defaults are expected to be applied already.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Content.Root) == "" {
		return derrors.ConfigError("content.root must not be empty").Build()
	}
	if strings.ContainsAny(cfg.Content.Extension, `/\`) {
		return derrors.ConfigError("content.extension must not contain path separators").
			WithContext("extension", cfg.Content.Extension).
			Build()
	}
	if !strings.HasPrefix(cfg.Content.BasePath, "/") {
		return derrors.ConfigError("content.base_path must start with /").
			WithContext("base_path", cfg.Content.BasePath).
			Build()
	}

	seen := make(map[string]struct{}, len(cfg.Sections))
	for _, s := range cfg.Sections {
		if s.ID == "" {
			return derrors.ConfigError("sections entries require an id").Build()
		}
		if _, dup := seen[s.ID]; dup {
			return derrors.ConfigError("duplicate section id").WithContext("id", s.ID).Build()
		}
		seen[s.ID] = struct{}{}
	}

	if cfg.Search.Limit < 1 {
		return derrors.ConfigError("search.limit must be positive").
			WithContext("limit", cfg.Search.Limit).
			Build()
	}
	if cfg.Search.MinQueryLength < 1 {
		return derrors.ConfigError("search.min_query_length must be positive").
			WithContext("min_query_length", cfg.Search.MinQueryLength).
			Build()
	}
	return nil
}
