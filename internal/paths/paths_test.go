// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetConfigDirOverride(t *testing.T) {
	t.Setenv("CARDSCAN_CONFIG_DIR", "/tmp/custom-cardscan")

	if got := GetConfigDir(); got != "/tmp/custom-cardscan" {
		t.Errorf("GetConfigDir() = %q, want the override", got)
	}
}

func TestGetConfigFile(t *testing.T) {
	t.Setenv("CARDSCAN_CONFIG_DIR", "/tmp/custom-cardscan")

	want := filepath.Join("/tmp/custom-cardscan", "config.yaml")
	if got := GetConfigFile(); got != want {
		t.Errorf("GetConfigFile() = %q, want %q", got, want)
	}
}

func TestResolvePath(t *testing.T) {
	got, err := ResolvePath("")
	if err != nil || got != "" {
		t.Errorf("ResolvePath(\"\") = %q, %v", got, err)
	}

	got, err = ResolvePath("a/../b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, "b") {
		t.Errorf("ResolvePath(a/../b) = %q", got)
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty means stdout", "", false},
		{"file in existing dir", filepath.Join(dir, "out.json"), false},
		{"existing directory", dir, true},
		{"missing parent", filepath.Join(dir, "nope", "out.json"), true},
		{"null byte", "out\x00.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPathOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Overwriting an existing file is allowed.
	if err := ValidateOutputPath(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
