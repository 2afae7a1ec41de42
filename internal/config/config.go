// Package config loads the designkit build configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one documentation build.
type Config struct {
	// Input is the directory walked for Markdown sources.
	Input string `yaml:"input"`

	// Output is the directory receiving rendered pages and static assets.
	Output string `yaml:"output"`

	// Title is used in rendered page titles.
	Title string `yaml:"title,omitempty"`

	// RootDoc is the document identifier of the site root.
	RootDoc string `yaml:"root_doc,omitempty"`

	// HideRootTitle hides the first title of the root document.
	HideRootTitle bool `yaml:"hide_root_title,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:   ".",
		Output:  "./site",
		RootDoc: "index",
	}
}

// Load reads a YAML configuration file and applies defaults. A missing
// file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Input == "" {
		cfg.Input = "."
	}
	if cfg.Output == "" {
		cfg.Output = "./site"
	}
	if cfg.RootDoc == "" {
		cfg.RootDoc = "index"
	}
	return cfg, nil
}
