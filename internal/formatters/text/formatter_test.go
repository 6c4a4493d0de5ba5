// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"cardscan/internal/contact"
	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
)

func sampleResult() pipeline.Result {
	return pipeline.Result{
		Contact: contact.Contact{
			Name:         "Johnny Jabbour",
			Title:        "Business Development Manager",
			Organization: "ARCO electromechanical",
			Email:        "johnny@arco.ae",
			Phone:        "+971 2 445 0707",
			WorkPhone:    "+971 2 445 0707",
			FaxPhone:     "+971 2 445 5052",
			Website:      "https://arco.ae",
			Address:      "P.O Box 25475, Abu Dhabi, UAE",
			City:         "Abu Dhabi",
			Country:      "UAE",
			Zipcode:      "25475",
		},
		Confidence: 92,
	}
}

func TestFormatContainsFields(t *testing.T) {
	f := NewFormatter()

	out, err := f.Format(sampleResult(), validate.Result{IsValid: true}, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Johnny Jabbour",
		"Business Development Manager",
		"ARCO electromechanical",
		"johnny@arco.ae",
		"+971 2 445 5052",
		"https://arco.ae",
		"Overall confidence: 92%",
		"Valid contact",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatOmitsEmptyFields(t *testing.T) {
	f := NewFormatter()
	result := sampleResult()
	result.Contact.FaxPhone = ""
	result.Contact.MobilePhone = ""

	out, err := f.Format(result, validate.Result{IsValid: true}, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "Fax:") {
		t.Error("empty fax should not be printed")
	}
	if strings.Contains(out, "Mobile:") {
		t.Error("empty mobile should not be printed")
	}
}

func TestFormatVerboseAddressComponents(t *testing.T) {
	f := NewFormatter()

	plain, err := f.Format(sampleResult(), validate.Result{IsValid: true}, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain, "Zipcode:") {
		t.Error("address components should need verbose mode")
	}

	verbose, err := f.Format(sampleResult(), validate.Result{IsValid: true}, formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"City:", "Abu Dhabi", "Zipcode:", "25475", "Country:"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("verbose output missing %q", want)
		}
	}
}

func TestFormatInvalidContact(t *testing.T) {
	f := NewFormatter()
	validation := validate.Result{
		IsValid:  false,
		Errors:   []string{"Name is required"},
		Warnings: []string{"No phone numbers found - this will limit contact options"},
	}

	out, err := f.Format(sampleResult(), validation, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Invalid contact",
		"ERROR: Name is required",
		"WARNING: No phone numbers found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSuggestionsNeedVerbose(t *testing.T) {
	f := NewFormatter()
	validation := validate.Result{
		IsValid:     true,
		Suggestions: []string{"Email domain doesn't match organization - verify both are correct"},
	}

	plain, err := f.Format(sampleResult(), validation, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain, "SUGGESTION") {
		t.Error("suggestions should need verbose mode")
	}

	verbose, err := f.Format(sampleResult(), validation, formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(verbose, "SUGGESTION: Email domain") {
		t.Error("verbose output should carry suggestions")
	}
}

func TestFormatterMetadata(t *testing.T) {
	f := NewFormatter()
	if f.Name() != "text" {
		t.Errorf("Name() = %q", f.Name())
	}
	if f.FileExtension() != ".txt" {
		t.Errorf("FileExtension() = %q", f.FileExtension())
	}
}
