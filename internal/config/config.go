// Package config loads scribe's optional YAML configuration. A missing file
// is not an error; defaults always produce a working pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scribe/internal/docbuild"
)

// Config holds all scribe configuration.
type Config struct {
	Render   RenderConfig    `yaml:"render"`
	Sections []SectionConfig `yaml:"sections"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// RenderConfig controls the presentation-facing knobs the pipeline accepts
// from its caller.
type RenderConfig struct {
	// StatusGlyphs switches the action-table status column to colored
	// indicator glyphs.
	StatusGlyphs bool `yaml:"status_glyphs"`

	// Width bounds terminal rendering; 0 means no wrap.
	Width int `yaml:"width"`

	// OverrideSection is the major-header title whose raw content is
	// replaced by the structurally rendered action-item table.
	OverrideSection string `yaml:"override_section"`
}

// SectionConfig adds one recognized subsection to the builder vocabulary.
type SectionConfig struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// LoggingConfig controls pipeline logging.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			StatusGlyphs:    true,
			OverrideSection: docbuild.NextStepsTitle,
		},
	}
}

// Load reads a YAML config file, layering it over Default. A missing file
// yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Render.OverrideSection == "" {
		cfg.Render.OverrideSection = docbuild.NextStepsTitle
	}
	return cfg, nil
}

// NewBuilder constructs a document builder with any configured extra
// sections registered.
func (c *Config) NewBuilder() *docbuild.Builder {
	b := docbuild.NewBuilder()
	for _, s := range c.Sections {
		if s.Title != "" {
			b.AddSection(s.Title, s.Icon)
		}
	}
	return b
}
