// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package geodata holds the fixed country and city tables shared by the
// address extractor and the contact builder. The lists cover where the
// card corpus actually comes from; they are data, not configuration.
package geodata

import (
	"regexp"
	"strings"
)

// Countries recognized in address lines, canonical spellings and the
// abbreviations cards actually print.
var Countries = []string{
	"UAE", "United Arab Emirates", "Saudi Arabia", "KSA", "Oman", "India",
	"Pakistan", "Qatar", "Bangladesh", "Philippines", "UK", "United Kingdom",
	"Canada", "Australia", "Japan", "Korea", "China", "USA", "United States",
	"Sweden", "Iran", "Sudan",
}

// Cities recognized in address lines.
var Cities = []string{
	"Abu Dhabi", "Dubai", "Sharjah", "Ajman", "Riyadh", "Jeddah", "Muscat",
	"Mumbai", "Delhi", "Karachi", "Lahore", "Doha", "Dhaka", "Manila",
	"London", "Toronto", "Sydney", "Tokyo", "Seoul", "Beijing", "New York",
	"Stockholm", "Tehran", "Khartoum",
}

var (
	// CountryPattern matches any known country anywhere in a line.
	CountryPattern = regexp.MustCompile(`(?i)\b(` + joinAlternatives(Countries) + `)\b`)
	// CityPattern matches any known city anywhere in a line.
	CityPattern = regexp.MustCompile(`(?i)\b(` + joinAlternatives(Cities) + `)\b`)

	countryExact = regexp.MustCompile(`(?i)^(` + joinAlternatives(Countries) + `)$`)
)

// IsCountry reports whether s, in its entirety, names a known country.
func IsCountry(s string) bool {
	return countryExact.MatchString(strings.TrimSpace(s))
}

func joinAlternatives(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}
