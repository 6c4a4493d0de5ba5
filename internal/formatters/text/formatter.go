// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result pipeline.Result, validation validate.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	c := result.Contact

	b.WriteString(f.colors["white"].Sprint("Contact") + "\n")
	f.field(&b, "Name", c.Name, f.reliabilityColor(validation, "name"))
	if c.Prefix != "" {
		f.field(&b, "Prefix", c.Prefix, nil)
	}
	if c.Suffix != "" {
		f.field(&b, "Suffix", c.Suffix, nil)
	}
	f.field(&b, "Title", c.Title, f.reliabilityColor(validation, "title"))
	f.field(&b, "Organization", c.Organization, f.reliabilityColor(validation, "organization"))
	f.field(&b, "Email", c.Email, f.reliabilityColor(validation, "email"))
	f.field(&b, "Phone", c.Phone, f.reliabilityColor(validation, "phone"))
	f.field(&b, "Mobile", c.MobilePhone, nil)
	f.field(&b, "Work", c.WorkPhone, nil)
	f.field(&b, "Home", c.HomePhone, nil)
	f.field(&b, "Fax", c.FaxPhone, nil)
	f.field(&b, "Website", c.Website, f.reliabilityColor(validation, "website"))
	f.field(&b, "Address", c.Address, nil)
	if options.Verbose {
		f.field(&b, "Street", c.Street, nil)
		f.field(&b, "City", c.City, nil)
		f.field(&b, "State", c.State, nil)
		f.field(&b, "Zipcode", c.Zipcode, nil)
		f.field(&b, "Country", c.Country, nil)
	}

	b.WriteString(fmt.Sprintf("\nOverall confidence: %.0f%%\n", result.Confidence))

	if len(result.LogoColors) > 0 && options.Verbose {
		b.WriteString("Logo colors: ")
		var hexes []string
		for _, lc := range result.LogoColors {
			hexes = append(hexes, lc.Hex)
		}
		b.WriteString(strings.Join(hexes, ", ") + "\n")
	}

	if validation.IsValid {
		b.WriteString(f.colors["green"].Sprint("Valid contact") + "\n")
	} else {
		b.WriteString(f.colors["red"].Sprint("Invalid contact") + "\n")
	}
	for _, e := range validation.Errors {
		b.WriteString(f.colors["red"].Sprintf("  ERROR: %s", e) + "\n")
	}
	for _, w := range validation.Warnings {
		b.WriteString(f.colors["yellow"].Sprintf("  WARNING: %s", w) + "\n")
	}
	if options.Verbose {
		for _, s := range validation.Suggestions {
			b.WriteString(f.colors["cyan"].Sprintf("  SUGGESTION: %s", s) + "\n")
		}
	}

	return b.String(), nil
}

func (f *Formatter) field(b *strings.Builder, label, value string, c *color.Color) {
	if value == "" {
		return
	}
	if c != nil {
		value = c.Sprint(value)
	}
	fmt.Fprintf(b, "  %-13s %s\n", label+":", value)
}

// reliabilityColor maps a field's validation reliability onto the usual
// traffic-light colors.
func (f *Formatter) reliabilityColor(validation validate.Result, field string) *color.Color {
	switch validation.FieldReliability[field] {
	case validate.ReliabilityHigh:
		return f.colors["green"]
	case validate.ReliabilityMedium:
		return f.colors["yellow"]
	case validate.ReliabilityLow:
		return f.colors["red"]
	}
	return nil
}
