// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardscan/internal/contact"
)

func goodContact() contact.Contact {
	return contact.Contact{
		Name:         "Ahmed Hassan",
		FirstName:    "Ahmed",
		LastName:     "Hassan",
		Email:        "ahmed@sicurouae.ae",
		Phone:        "+971 5 012 34567",
		MobilePhone:  "+971 5 012 34567",
		Organization: "Sicurouae electromechanical",
		Title:        "Project Manager",
		Website:      "https://www.sicurouae.ae",
	}
}

func goodConfidences() map[string]float64 {
	return map[string]float64{
		"name":         95,
		"email":        85,
		"phone":        80,
		"website":      75,
		"organization": 75,
		"title":        70,
	}
}

func TestValidateGoodContact(t *testing.T) {
	v := NewValidator()

	r := v.Validate(goodContact(), 90, goodConfidences())

	require.True(t, r.IsValid)
	assert.Empty(t, r.Errors)
	assert.Equal(t, ReliabilityHigh, r.FieldReliability["name"])
}

func TestValidateMissingName(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Name, c.FirstName, c.LastName = "", "", ""

	r := v.Validate(c, 90, goodConfidences())

	require.False(t, r.IsValid)
	assert.Contains(t, r.Errors, "Name is required")
}

func TestValidateInvalidEmail(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Email = "not-an-email"

	r := v.Validate(c, 90, goodConfidences())

	require.False(t, r.IsValid)
	assert.Contains(t, r.Errors, "Email address format is invalid")
	assert.Equal(t, ReliabilityLow, r.FieldReliability["email"])
}

func TestValidateNoValidPhone(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Phone = "12345"
	c.MobilePhone = "12345"

	r := v.Validate(c, 90, goodConfidences())

	require.False(t, r.IsValid)
	assert.Contains(t, r.Errors, "At least one valid phone number is required")
}

func TestValidateNoContactMethod(t *testing.T) {
	v := NewValidator()
	c := contact.Contact{
		Name:      "Ahmed Hassan",
		FirstName: "Ahmed",
		LastName:  "Hassan",
	}

	r := v.Validate(c, 90, map[string]float64{"name": 95})

	require.False(t, r.IsValid)
	assert.Contains(t, r.Errors, "At least one contact method (email or phone) is required")
}

func TestValidateNoPhoneAtAllWarnsOnly(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Phone, c.MobilePhone = "", ""

	r := v.Validate(c, 90, goodConfidences())

	require.True(t, r.IsValid)
	assert.Contains(t, r.Warnings, "No phone numbers found - this will limit contact options")
}

func TestValidateJoinedPhoneNotFlaggedTooLong(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Phone = "+971 5 012 34567 | +971 2 445 8100 | +971 2 445 8101"

	r := v.Validate(c, 90, goodConfidences())

	require.True(t, r.IsValid)
	for _, w := range r.Warnings {
		assert.NotContains(t, w, "seems too long")
	}
}

func TestValidateLowOverallConfidenceWarns(t *testing.T) {
	v := NewValidator()

	r := v.Validate(goodContact(), 40, goodConfidences())

	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "Low recognition confidence") {
			found = true
		}
	}
	assert.True(t, found, "expected low-confidence warning, got %v", r.Warnings)
}

func TestValidateNameMisreads(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Name = "Ahrned  Hassan"
	c.FirstName = "Ahrned"

	r := v.Validate(c, 90, goodConfidences())

	assert.Contains(t, r.Warnings, "Name may contain recognition errors (unusual characters or spacing)")
	// Inconsistent with first/last fields too, since Name was damaged.
	assert.Contains(t, r.Warnings, "Name field inconsistent with first/last name fields")
}

func TestValidateReliabilityTiers(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		confidence float64
		want       Reliability
	}{
		{"name high", "name", 95, ReliabilityHigh},
		{"name medium", "name", 70, ReliabilityMedium},
		{"name low", "name", 50, ReliabilityLow},
		{"email high", "email", 90, ReliabilityHigh},
		{"email medium", "email", 75, ReliabilityMedium},
		{"email low", "email", 60, ReliabilityLow},
		{"phone high", "phone", 85, ReliabilityHigh},
		{"phone medium", "phone", 65, ReliabilityMedium},
		{"organization high", "organization", 80, ReliabilityHigh},
		{"organization medium", "organization", 60, ReliabilityMedium},
		{"title medium", "title", 70, ReliabilityMedium},
		{"website medium", "website", 75, ReliabilityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			confidences := goodConfidences()
			confidences[tt.field] = tt.confidence

			r := v.Validate(goodContact(), 90, confidences)

			assert.Equal(t, tt.want, r.FieldReliability[tt.field])
		})
	}
}

func TestValidateEmailDomainOrganizationMismatch(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Organization = "Totally Different Corp"

	r := v.Validate(c, 90, goodConfidences())

	assert.Contains(t, r.Suggestions, "Email domain doesn't match organization - verify both are correct")
}

func TestValidateWebsiteMisreads(t *testing.T) {
	v := NewValidator()
	c := goodContact()
	c.Website = "https://www.sicurouae.ae,com"

	r := v.Validate(c, 90, goodConfidences())

	assert.Contains(t, r.Warnings, "Website URL may contain recognition errors")
}
