// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// output is the stable JSON envelope: the scan result plus its validation.
type output struct {
	Result     pipeline.Result `json:"result"`
	Validation validate.Result `json:"validation"`
}

func (f *Formatter) Format(result pipeline.Result, validation validate.Result, options formatters.FormatterOptions) (string, error) {
	data, err := json.MarshalIndent(output{Result: result, Validation: validation}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
