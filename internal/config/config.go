// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shamai-scan/internal/detector"
)

// Config represents the application configuration.
type Config struct {
	// Default settings applied before profile and flag overrides.
	Defaults struct {
		Format              string `yaml:"format"`
		Term                string `yaml:"term"`
		Verbose             bool   `yaml:"verbose"`
		NoColor             bool   `yaml:"no_color"`
		Recursive           bool   `yaml:"recursive"`
		Workers             int    `yaml:"workers"`
		EnablePreprocessors bool   `yaml:"enable_preprocessors"`
	} `yaml:"defaults"`

	// Sections extends the built-in header-phrase and fallback-keyword
	// tables. Keys are section kinds (partyA, partyB, partiesClaims,
	// ruling, comparisons, calculation); extensions have lower priority
	// than the built-in phrases.
	Sections struct {
		ExtraPhrases   map[string][]string `yaml:"extra_phrases"`
		ExtraFallbacks map[string][]string `yaml:"extra_fallbacks"`
	} `yaml:"sections"`

	// Profiles for different scanning scenarios.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named scanning profile.
type Profile struct {
	Format      string `yaml:"format"`
	Term        string `yaml:"term"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"no_color"`
	Recursive   bool   `yaml:"recursive"`
	Workers     int    `yaml:"workers"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{Profiles: make(map[string]Profile)}
	config.Defaults.Format = "text"
	config.Defaults.Workers = 0 // 0 = one per CPU
	config.Defaults.EnablePreprocessors = true

	// Batch comparison runs want machine output and no per-section noise.
	config.Profiles["batch"] = Profile{
		Format:      "json",
		NoColor:     true,
		Recursive:   true,
		Description: "Machine-readable batch scanning over a directory tree",
	}

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	return config, nil
}

// FindConfigFile searches standard locations for a config file and returns
// the first that exists, or "".
func FindConfigFile() string {
	candidates := []string{
		".shamai-scan.yaml",
		"shamai-scan.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "shamai-scan", "config.yaml"),
			filepath.Join(home, ".shamai-scan.yaml"),
		)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// GetProfile returns the named profile.
func (c *Config) GetProfile(name string) (Profile, bool) {
	p, ok := c.Profiles[name]
	return p, ok
}

var knownKinds = map[string]detector.SectionKind{
	"partyA":        detector.KindPartyA,
	"partyB":        detector.KindPartyB,
	"partiesClaims": detector.KindPartiesClaims,
	"ruling":        detector.KindRuling,
	"comparisons":   detector.KindComparisons,
	"calculation":   detector.KindCalculation,
}

// ExtraPhrases returns the configured header-phrase extensions keyed by
// section kind.
func (c *Config) ExtraPhrases() map[detector.SectionKind][]string {
	return kindMap(c.Sections.ExtraPhrases)
}

// ExtraFallbacks returns the configured fallback-keyword extensions keyed
// by section kind.
func (c *Config) ExtraFallbacks() map[detector.SectionKind][]string {
	return kindMap(c.Sections.ExtraFallbacks)
}

func kindMap(in map[string][]string) map[detector.SectionKind][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[detector.SectionKind][]string, len(in))
	for name, phrases := range in {
		if kind, ok := knownKinds[name]; ok {
			out[kind] = append(out[kind], phrases...)
		}
	}
	return out
}

func (c *Config) validate() error {
	for name := range c.Sections.ExtraPhrases {
		if _, ok := knownKinds[name]; !ok {
			return fmt.Errorf("unknown section kind in extra_phrases: %q", name)
		}
	}
	for name := range c.Sections.ExtraFallbacks {
		if _, ok := knownKinds[name]; !ok {
			return fmt.Errorf("unknown section kind in extra_fallbacks: %q", name)
		}
	}
	switch c.Defaults.Format {
	case "", "text", "json", "csv":
	default:
		return fmt.Errorf("unknown default format: %q", c.Defaults.Format)
	}
	return nil
}
