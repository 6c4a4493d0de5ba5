// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textclean

import (
	"regexp"
	"strings"
)

// Compiled once at package init. These tables encode what recognition noise
// looks like on business cards; the cleaner consults them per line.
var (
	specialOnlyPattern   = regexp.MustCompile(`^[^a-zA-Z0-9@+.]*$`)
	shortUpperPattern    = regexp.MustCompile(`^[A-Z]{1,2}$`)
	upperWhitelist       = regexp.MustCompile(`^(IT|AI|HR|PR|QR|US|UK|UAE)$`)
	consonantCluster     = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ]{4,}`)
	contactMarkerPrefix  = regexp.MustCompile(`^[TFEA]\s+`)
	longDigitRun         = regexp.MustCompile(`\b\d{3,}`)
	wwwPattern           = regexp.MustCompile(`(?i)www\.`)
	domainSuffixPattern  = regexp.MustCompile(`\.(com|org|net|ae|co)`)
	letterPattern        = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern         = regexp.MustCompile(`\d`)
	addressWordPattern   = regexp.MustCompile(`(?i)(?:box|street|st|avenue|ave|road|rd)`)
	nameShapePattern     = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)
	phoneRunPattern      = regexp.MustCompile(`\+?\d{3,}`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
	nonEnglishChars      = regexp.MustCompile(`[^\w\s@+.\-]`)
	garbagePairPattern   = regexp.MustCompile(`^[A-Z]{1,3}\s+[A-Z][a-z]{1,3}$`)
	honorificHint        = regexp.MustCompile(`Mr|Ms|Dr`)
	startsUpperPattern   = regexp.MustCompile(`^[A-Z]`)
	leadingDigitOrMarker = regexp.MustCompile(`^\+?\d`)
)

// substitutions repairs recognition errors observed on real cards. Keyed by
// the exact damaged line.
var substitutions = map[string]string{
	"SICUIO)": "Sicuro",
	"SICURO)": "Sicuro",
	"sicuro)": "Sicuro",
}

// isGarbage reports whether a line is recognition noise with no usable
// content: empty shells of punctuation, stray capital pairs, shouting
// wordless runs, or consonant gibberish.
func isGarbage(line string) bool {
	if len(line) <= 1 {
		return true
	}
	if specialOnlyPattern.MatchString(line) {
		return true
	}
	if shortUpperPattern.MatchString(line) && !upperWhitelist.MatchString(line) {
		return true
	}
	if line == strings.ToUpper(line) && len(line) > 10 && !strings.ContainsAny(line, "@+0123456789") {
		return true
	}
	if len(consonantCluster.FindAllString(line, -1)) > 2 {
		return true
	}
	return false
}

// isContactInfo reports whether a line carries contact data that must pass
// through verbatim. Emails, phones and URLs are exactly the lines the
// field extractors match against, so the cleaner never rewrites them.
func isContactInfo(line string) bool {
	return strings.ContainsAny(line, "@+") ||
		contactMarkerPrefix.MatchString(line) ||
		longDigitRun.MatchString(line) ||
		wwwPattern.MatchString(line) ||
		domainSuffixPattern.MatchString(line)
}

// isValidTextLine accepts lines with real words: at least two characters,
// at least one letter, and not digit-dominated unless it reads like a
// street or box line.
func isValidTextLine(line string) bool {
	if len(line) < 2 {
		return false
	}
	if !letterPattern.MatchString(line) {
		return false
	}
	letters := len(letterPattern.FindAllString(line, -1))
	digits := len(digitPattern.FindAllString(line, -1))
	if digits > letters && !addressWordPattern.MatchString(line) {
		return false
	}
	return true
}

// hasCardShape reports whether the cleaned lines look like a business card:
// some way to reach the person plus a line shaped like a person's name.
func hasCardShape(lines []string) bool {
	var hasReach, hasName bool
	for _, line := range lines {
		if strings.Contains(line, "@") || phoneRunPattern.MatchString(line) {
			hasReach = true
		}
		if nameShapePattern.MatchString(line) {
			hasName = true
		}
	}
	return hasReach && hasName
}
