// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths resolves the configuration directory and validates
// user-supplied output paths before anything is written to them.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetConfigDir returns the cardscan configuration directory.
func GetConfigDir() string {
	// Explicit override wins on every platform.
	if dir := os.Getenv("CARDSCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		return filepath.Join(home, ".cardscan")
	}
	return filepath.Join(base, "cardscan")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	dir := GetConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ResolvePath resolves a path to its absolute, cleaned form.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(filepath.Clean(path))
}

// ValidateOutputPath checks that a path is usable as a result output file:
// no null bytes, not an existing directory, and a parent directory that
// exists. An empty path is valid and means stdout.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, 0) {
		return &PathValidationError{Path: path, Reason: "contains null byte"}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &PathValidationError{Path: path, Reason: "is a directory"}
	}

	parent := filepath.Dir(filepath.Clean(path))
	info, err := os.Stat(parent)
	if err != nil {
		return &PathValidationError{Path: path, Reason: fmt.Sprintf("parent directory %s does not exist", parent)}
	}
	if !info.IsDir() {
		return &PathValidationError{Path: path, Reason: fmt.Sprintf("parent %s is not a directory", parent)}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
