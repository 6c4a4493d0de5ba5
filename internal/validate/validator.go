// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validate checks an assembled contact for completeness, format
// problems and traces of recognition damage. Validation never repairs; it
// reports errors that make the contact unusable, warnings worth a human
// look, and suggestions for fixing likely misreads.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"cardscan/internal/contact"
)

// Reliability grades how much a field's value can be trusted.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// Result is the full validation outcome. IsValid is false exactly when
// Errors is non-empty.
type Result struct {
	IsValid          bool                   `json:"is_valid" yaml:"is_valid"`
	Errors           []string               `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings         []string               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Suggestions      []string               `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	FieldReliability map[string]Reliability `json:"field_reliability" yaml:"field_reliability"`
}

// Validator holds the compiled format and misread patterns. Create with
// NewValidator; safe for concurrent use.
type Validator struct {
	emailFormat  *regexp.Regexp
	urlFormat    *regexp.Regexp
	domainFormat *regexp.Regexp
	nonPhone     *regexp.Regexp
	nonAlnum     *regexp.Regexp

	nameMisreads    []*regexp.Regexp
	emailMisreads   *regexp.Regexp
	phoneMisreads   *regexp.Regexp
	websiteMisreads *regexp.Regexp
}

// NewValidator creates a validator with all patterns compiled.
func NewValidator() *Validator {
	return &Validator{
		emailFormat:  regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		urlFormat:    regexp.MustCompile(`(?i)^https?://[^\s/$.?#].[^\s]*$`),
		domainFormat: regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}$`),
		nonPhone:     regexp.MustCompile(`[^\d+]`),
		nonAlnum:     regexp.MustCompile(`[^a-z0-9]`),

		// Misread shapes: doubled ambiguous glyphs, rn-for-m, stray
		// punctuation where a name or URL has none.
		nameMisreads: []*regexp.Regexp{
			regexp.MustCompile(`[0O]{2,}`),
			regexp.MustCompile(`[1Il]{2,}`),
			regexp.MustCompile(`rn`),
			regexp.MustCompile(`\s{2,}`),
			regexp.MustCompile(`[^\w\s\-.']`),
		},
		emailMisreads:   regexp.MustCompile(`[rn]n|[cl]d|[0O][a-z]|@{2,}|\.{2,}`),
		phoneMisreads:   regexp.MustCompile(`[OS]\d|[I1]\d|[rn]\d`),
		websiteMisreads: regexp.MustCompile(`[rn]n|[cl]om|[0O][a-z]|\.{2,}|,`),
	}
}

// Validate checks the contact against overall and per-field confidences.
// fieldConfidences is keyed by field name (name, email, phone, website,
// organization, title); missing keys are treated as zero.
func (v *Validator) Validate(c contact.Contact, overallConfidence float64, fieldConfidences map[string]float64) Result {
	r := Result{FieldReliability: make(map[string]Reliability)}
	conf := func(field string) float64 { return fieldConfidences[field] }

	if overallConfidence < 50 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Low recognition confidence (%.0f%%). Please review all fields carefully.", overallConfidence))
	}

	v.validateName(c, conf("name"), &r)
	v.validateEmail(c, conf("email"), &r)
	v.validatePhone(c, conf("phone"), &r)
	if !c.HasContactMethod() {
		r.Errors = append(r.Errors, "At least one contact method (email or phone) is required")
	}
	v.validateWebsite(c, conf("website"), &r)
	v.validateOrgAndTitle(c, conf("organization"), conf("title"), &r)
	v.crossFieldChecks(c, &r)

	r.IsValid = len(r.Errors) == 0
	return r
}

func (v *Validator) validateName(c contact.Contact, confidence float64, r *Result) {
	if c.Name == "" && c.FirstName == "" && c.LastName == "" {
		r.Errors = append(r.Errors, "Name is required")
		return
	}

	switch {
	case confidence > 80:
		r.FieldReliability["name"] = ReliabilityHigh
	case confidence > 60:
		r.FieldReliability["name"] = ReliabilityMedium
		r.Warnings = append(r.Warnings, fmt.Sprintf("Name field has moderate confidence (%.0f%%). Please verify spelling.", confidence))
	default:
		r.FieldReliability["name"] = ReliabilityLow
		r.Warnings = append(r.Warnings, fmt.Sprintf("Name field has low confidence (%.0f%%). Please check for accuracy.", confidence))
	}

	fullName := c.Name
	if fullName == "" {
		fullName = strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	if v.nameHasMisreads(fullName) {
		r.Warnings = append(r.Warnings, "Name may contain recognition errors (unusual characters or spacing)")
		r.Suggestions = append(r.Suggestions, `Check for incorrect characters like "0" instead of "O" or "1" instead of "l"`)
	}
	if len(fullName) < 2 {
		r.Warnings = append(r.Warnings, "Name seems unusually short")
	}
	if len(fullName) > 50 {
		r.Warnings = append(r.Warnings, "Name seems unusually long - may include title or organization")
	}
}

func (v *Validator) validateEmail(c contact.Contact, confidence float64, r *Result) {
	if c.Email == "" {
		r.Warnings = append(r.Warnings, "Email address not found - this will limit contact sharing options")
		return
	}

	if !v.emailFormat.MatchString(c.Email) {
		r.Errors = append(r.Errors, "Email address format is invalid")
		r.FieldReliability["email"] = ReliabilityLow
		return
	}

	switch {
	case confidence > 85:
		r.FieldReliability["email"] = ReliabilityHigh
	case confidence > 70:
		r.FieldReliability["email"] = ReliabilityMedium
		r.Warnings = append(r.Warnings, fmt.Sprintf("Email field has moderate confidence (%.0f%%). Please verify spelling.", confidence))
	default:
		r.FieldReliability["email"] = ReliabilityLow
		r.Warnings = append(r.Warnings, fmt.Sprintf("Email field has low confidence (%.0f%%). Please double-check accuracy.", confidence))
	}

	if v.emailMisreads.MatchString(c.Email) {
		r.Warnings = append(r.Warnings, "Email may contain recognition errors (check @ symbol and domain)")
		r.Suggestions = append(r.Suggestions, `Common email misreads: "rn" for "m", "cl" for "d", "0" for "o"`)
	}

	if at := strings.Index(c.Email, "@"); at >= 0 {
		if domain := c.Email[at+1:]; domain != "" && !v.domainFormat.MatchString(domain) {
			r.Warnings = append(r.Warnings, "Email domain appears unusual - please verify")
		}
	}
}

func (v *Validator) validatePhone(c contact.Contact, confidence float64, r *Result) {
	var numbers []string
	for _, p := range []string{c.Phone, c.MobilePhone, c.WorkPhone, c.HomePhone, c.FaxPhone} {
		if p != "" {
			numbers = append(numbers, p)
		}
	}
	if len(numbers) == 0 {
		r.Warnings = append(r.Warnings, "No phone numbers found - this will limit contact options")
		return
	}

	hasValid := false
	for i, phone := range numbers {
		digits := v.nonPhone.ReplaceAllString(phone, "")
		switch {
		case len(digits) < 7:
			r.Warnings = append(r.Warnings, fmt.Sprintf("Phone number %d seems too short", i+1))
		case len(digits) > 15 && !strings.Contains(phone, "|"):
			r.Warnings = append(r.Warnings, fmt.Sprintf("Phone number %d seems too long", i+1))
		default:
			hasValid = true
		}

		if v.phoneMisreads.MatchString(phone) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("Phone number %d may contain recognition errors", i+1))
			r.Suggestions = append(r.Suggestions, `Common phone misreads: "S" for "5", "O" for "0", "I" for "1"`)
		}
	}

	switch {
	case confidence > 80 && hasValid:
		r.FieldReliability["phone"] = ReliabilityHigh
	case confidence > 60 && hasValid:
		r.FieldReliability["phone"] = ReliabilityMedium
		r.Warnings = append(r.Warnings, fmt.Sprintf("Phone field has moderate confidence (%.0f%%). Please verify numbers.", confidence))
	default:
		r.FieldReliability["phone"] = ReliabilityLow
		r.Warnings = append(r.Warnings, fmt.Sprintf("Phone field has low confidence (%.0f%%). Please check all digits.", confidence))
	}

	if !hasValid {
		r.Errors = append(r.Errors, "At least one valid phone number is required")
	}
}

func (v *Validator) validateWebsite(c contact.Contact, confidence float64, r *Result) {
	if c.Website == "" {
		return
	}

	if !v.urlFormat.MatchString(c.Website) && !v.domainFormat.MatchString(c.Website) {
		r.Warnings = append(r.Warnings, "Website URL format may be incorrect")
		r.FieldReliability["website"] = ReliabilityLow
	} else {
		switch {
		case confidence > 80:
			r.FieldReliability["website"] = ReliabilityHigh
		case confidence > 60:
			r.FieldReliability["website"] = ReliabilityMedium
			r.Warnings = append(r.Warnings, fmt.Sprintf("Website field has moderate confidence (%.0f%%). Please verify URL.", confidence))
		default:
			r.FieldReliability["website"] = ReliabilityLow
			r.Warnings = append(r.Warnings, fmt.Sprintf("Website field has low confidence (%.0f%%). Please check spelling.", confidence))
		}
	}

	if v.websiteMisreads.MatchString(c.Website) {
		r.Warnings = append(r.Warnings, "Website URL may contain recognition errors")
		r.Suggestions = append(r.Suggestions, `Common website misreads: "rn" for "m", "," for ".", "0" for "o"`)
	}
}

func (v *Validator) validateOrgAndTitle(c contact.Contact, orgConfidence, titleConfidence float64, r *Result) {
	if c.Organization != "" {
		switch {
		case orgConfidence > 75:
			r.FieldReliability["organization"] = ReliabilityHigh
		case orgConfidence > 50:
			r.FieldReliability["organization"] = ReliabilityMedium
			r.Warnings = append(r.Warnings, fmt.Sprintf("Organization field has moderate confidence (%.0f%%).", orgConfidence))
		default:
			r.FieldReliability["organization"] = ReliabilityLow
			r.Warnings = append(r.Warnings, fmt.Sprintf("Organization field has low confidence (%.0f%%).", orgConfidence))
		}
	}

	if c.Title != "" {
		switch {
		case titleConfidence > 75:
			r.FieldReliability["title"] = ReliabilityHigh
		case titleConfidence > 50:
			r.FieldReliability["title"] = ReliabilityMedium
			r.Warnings = append(r.Warnings, fmt.Sprintf("Title field has moderate confidence (%.0f%%).", titleConfidence))
		default:
			r.FieldReliability["title"] = ReliabilityLow
			r.Warnings = append(r.Warnings, fmt.Sprintf("Title field has low confidence (%.0f%%).", titleConfidence))
		}
	}
}

func (v *Validator) crossFieldChecks(c contact.Contact, r *Result) {
	if c.Email != "" && c.Organization != "" {
		if at := strings.Index(c.Email, "@"); at >= 0 {
			domain := strings.ToLower(c.Email[at+1:])
			org := v.nonAlnum.ReplaceAllString(strings.ToLower(c.Organization), "")
			if len(org) > 6 {
				org = org[:6]
			}
			if domain != "" && org != "" && !strings.Contains(domain, org) {
				r.Suggestions = append(r.Suggestions, "Email domain doesn't match organization - verify both are correct")
			}
		}
	}

	if c.Name != "" && c.FirstName != "" && c.LastName != "" {
		fromParts := strings.TrimSpace(c.FirstName + " " + c.LastName)
		if !strings.EqualFold(c.Name, fromParts) {
			r.Warnings = append(r.Warnings, "Name field inconsistent with first/last name fields")
			r.Suggestions = append(r.Suggestions, "Choose either full name OR first/last name fields, not both")
		}
	}
}

func (v *Validator) nameHasMisreads(name string) bool {
	for _, p := range v.nameMisreads {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
