// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for config-friendly tooling"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type output struct {
	Result     pipeline.Result `yaml:"result"`
	Validation validate.Result `yaml:"validation"`
}

func (f *Formatter) Format(result pipeline.Result, validation validate.Result, options formatters.FormatterOptions) (string, error) {
	data, err := goyaml.Marshal(output{Result: result, Validation: validation})
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
