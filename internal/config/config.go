// Package config loads the rescheduler configuration from an optional file
// and the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/ukaji3/reschedule-go/pkg/reschedule/models"
)

// EnvPrefix prefixes environment overrides. Nested keys use "__", e.g.
// RESCHEDULE_LAYOUT__SHEET_NAME.
const EnvPrefix = "RESCHEDULE_"

// Config holds the sheet layout and the report language.
type Config struct {
	Layout models.Layout `json:"layout"`
	// Lang is the report language tag.
	Lang string `json:"lang"`
}

// Load reads path (YAML or JSON, chosen by extension) when it is not empty,
// applies environment overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps RESCHEDULE_LAYOUT__DAY_ROW to layout.day_row.
func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults applies the standard calendar layout and English.
func (c *Config) SetDefaults() {
	c.Layout.SetDefaults()
	if c.Lang == "" {
		c.Lang = "en"
	}
}

// Validate checks the layout and the language tag.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("lang %q: %w", c.Lang, err)
	}
	return nil
}
