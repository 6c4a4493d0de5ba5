// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cardscan/internal/paths"
	"cardscan/internal/textclean"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Recognition engine settings
	OCR struct {
		Engine    string   `yaml:"engine"`
		Languages []string `yaml:"languages"`
		// Fallback enables the reduced-parameter second pass when the
		// tuned pass produces nothing.
		Fallback bool `yaml:"fallback"`
	} `yaml:"ocr"`

	// Image preprocessing settings
	Preprocess struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"preprocess"`

	// Cleaner holds the text cleaner's score adjustments. The defaults are
	// the tuned values; override only when recalibrating against a new
	// card corpus.
	Cleaner textclean.Scoring `yaml:"cleaner"`

	// Logo color sampling
	LogoColors struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"logo_colors"`
}

// LoadConfig reads configuration from the given path, applying defaults
// for everything the file does not set. An empty path returns the default
// configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Defaults.Format = "text"
	config.OCR.Engine = "tesseract"
	config.OCR.Languages = []string{"eng"}
	config.OCR.Fallback = true
	config.Preprocess.Enabled = true
	config.Cleaner = textclean.DefaultScoring()
	config.LogoColors.Enabled = true

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Preserve bool defaults not present in the file; unmarshaling zeroes
	// absent fields.
	defaultFallback := config.OCR.Fallback
	defaultPreprocess := config.Preprocess.Enabled
	defaultLogoColors := config.LogoColors.Enabled

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "ocr", "fallback") {
		config.OCR.Fallback = defaultFallback
	}
	if !containsField(data, "preprocess", "enabled") {
		config.Preprocess.Enabled = defaultPreprocess
	}
	if !containsField(data, "logo_colors", "enabled") {
		config.LogoColors.Enabled = defaultLogoColors
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// default configuration when the file is missing or invalid.
func LoadConfigOrDefault(configFile string) *Config {
	config, err := LoadConfig(configFile)
	if err != nil {
		config, _ = LoadConfig("")
	}
	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	for _, name := range []string{"config.yaml", "cardscan.yaml", "cardscan.yml", ".cardscan.yaml", ".cardscan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	if candidate := paths.GetConfigFile(); candidate != "" && fileExists(candidate) {
		return candidate
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if candidate := filepath.Join(home, ".cardscan.yaml"); fileExists(candidate) {
		return candidate
	}
	return ""
}

// ValidateConfig checks the configuration for invalid values
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s", config.Defaults.Format)
	}

	switch config.OCR.Engine {
	case "tesseract", "pdftext", "noop":
	default:
		return fmt.Errorf("invalid ocr engine: %s", config.OCR.Engine)
	}

	if config.Cleaner.GarbagePenalty < 0 || config.Cleaner.RejectPenalty < 0 || config.Cleaner.CardShapeBonus < 0 {
		return fmt.Errorf("cleaner score adjustments must be non-negative")
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// containsField checks whether the raw YAML document sets the field at the
// given path. Needed to distinguish "explicitly false" from "absent".
func containsField(data []byte, path ...string) bool {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}

	current := doc
	for i, key := range path {
		value, ok := current[key]
		if !ok {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}
