// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"cardscan/internal/contact"
	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
)

func TestFormatEnvelope(t *testing.T) {
	f := NewFormatter()
	result := pipeline.Result{
		Contact: contact.Contact{
			Name:  "Johnny Jabbour",
			Email: "johnny@arco.ae",
		},
		Confidence:       92,
		FieldConfidences: map[string]float64{"email": 85},
	}
	validation := validate.Result{
		IsValid: true,
		FieldReliability: map[string]validate.Reliability{
			"email": validate.ReliabilityHigh,
		},
	}

	out, err := f.Format(result, validation, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Result struct {
			Contact struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"contact"`
			Confidence float64 `json:"confidence"`
		} `json:"result"`
		Validation struct {
			IsValid bool `json:"is_valid"`
		} `json:"validation"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if decoded.Result.Contact.Name != "Johnny Jabbour" {
		t.Errorf("name = %q", decoded.Result.Contact.Name)
	}
	if decoded.Result.Contact.Email != "johnny@arco.ae" {
		t.Errorf("email = %q", decoded.Result.Contact.Email)
	}
	if decoded.Result.Confidence != 92 {
		t.Errorf("confidence = %v", decoded.Result.Confidence)
	}
	if !decoded.Validation.IsValid {
		t.Error("validation should round-trip as valid")
	}
}

func TestFormatterMetadata(t *testing.T) {
	f := NewFormatter()
	if f.Name() != "json" {
		t.Errorf("Name() = %q", f.Name())
	}
	if f.FileExtension() != ".json" {
		t.Errorf("FileExtension() = %q", f.FileExtension())
	}
}
