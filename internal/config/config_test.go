// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Defaults.Format)
	}
	if cfg.OCR.Engine != "tesseract" {
		t.Errorf("Engine = %q, want tesseract", cfg.OCR.Engine)
	}
	if len(cfg.OCR.Languages) != 1 || cfg.OCR.Languages[0] != "eng" {
		t.Errorf("Languages = %v, want [eng]", cfg.OCR.Languages)
	}
	if !cfg.OCR.Fallback {
		t.Error("Fallback should default to true")
	}
	if !cfg.Preprocess.Enabled {
		t.Error("Preprocess should default to enabled")
	}
	if !cfg.LogoColors.Enabled {
		t.Error("LogoColors should default to enabled")
	}
	if cfg.Cleaner.GarbagePenalty != 2 {
		t.Errorf("GarbagePenalty = %v, want 2", cfg.Cleaner.GarbagePenalty)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `defaults:
  format: json
  verbose: true
ocr:
  engine: pdftext
  languages: [eng, ara]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Defaults.Format)
	}
	if !cfg.Defaults.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.OCR.Engine != "pdftext" {
		t.Errorf("Engine = %q, want pdftext", cfg.OCR.Engine)
	}
	if len(cfg.OCR.Languages) != 2 {
		t.Errorf("Languages = %v, want [eng ara]", cfg.OCR.Languages)
	}
	// Absent bools keep their defaults instead of zeroing out.
	if !cfg.OCR.Fallback {
		t.Error("Fallback should stay true when the file omits it")
	}
	if !cfg.Preprocess.Enabled {
		t.Error("Preprocess should stay enabled when the file omits it")
	}
}

func TestLoadConfigExplicitFalse(t *testing.T) {
	path := writeConfig(t, `ocr:
  fallback: false
preprocess:
  enabled: false
logo_colors:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OCR.Fallback {
		t.Error("Fallback should honor an explicit false")
	}
	if cfg.Preprocess.Enabled {
		t.Error("Preprocess should honor an explicit false")
	}
	if cfg.LogoColors.Enabled {
		t.Error("LogoColors should honor an explicit false")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "defaults: [not: a: map\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"json format", func(c *Config) { c.Defaults.Format = "json" }, false},
		{"bad format", func(c *Config) { c.Defaults.Format = "xml" }, true},
		{"noop engine", func(c *Config) { c.OCR.Engine = "noop" }, false},
		{"bad engine", func(c *Config) { c.OCR.Engine = "vision" }, true},
		{"negative penalty", func(c *Config) { c.Cleaner.GarbagePenalty = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig("")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)

			err = ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `ocr:
  engine: cloud-vision
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error for unknown engine")
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg == nil {
		t.Fatal("expected a config")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("Format = %q, want the text default", cfg.Defaults.Format)
	}

	path := writeConfig(t, "defaults:\n  format: yaml\n")
	cfg = LoadConfigOrDefault(path)
	if cfg.Defaults.Format != "yaml" {
		t.Errorf("Format = %q, want yaml from file", cfg.Defaults.Format)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	// Steer the home and config-dir lookups away from any real user config.
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("CARDSCAN_CONFIG_DIR", filepath.Join(dir, ".config", "cardscan"))

	if got := FindConfigFile(); got != "" {
		t.Errorf("FindConfigFile() = %q in empty dir, want empty", got)
	}

	if err := os.WriteFile("cardscan.yaml", []byte("defaults:\n  format: text\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(); got != "cardscan.yaml" {
		t.Errorf("FindConfigFile() = %q, want cardscan.yaml", got)
	}

	// config.yaml outranks cardscan.yaml.
	if err := os.WriteFile("config.yaml", []byte("defaults:\n  format: text\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(); got != "config.yaml" {
		t.Errorf("FindConfigFile() = %q, want config.yaml", got)
	}
}
