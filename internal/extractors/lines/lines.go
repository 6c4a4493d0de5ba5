// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lines separates contact-data lines from the prose lines the
// contextual extractors read. A line that repeats an already-extracted
// email, phone or website carries no further signal and would only
// mislead the name and title scorers.
package lines

import (
	"regexp"
	"strings"
)

var (
	markerPrefix = regexp.MustCompile(`^[TFEA]\s+`)
	phoneShape   = regexp.MustCompile(`\+?[\d\s\-()]{7,}`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// Residual returns the lines of all that carry none of the extracted
// fields and no contact-detail shape, preserving order. These are the
// candidate lines for name, organization, title and address extraction.
func Residual(all, emails, phones, websites []string) []string {
	var out []string
	for _, line := range all {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsEmail(line, emails) ||
			containsPhone(line, phones) ||
			containsWebsite(line, websites) ||
			isContactDetail(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func containsEmail(line string, emails []string) bool {
	lower := strings.ToLower(line)
	for _, email := range emails {
		if strings.Contains(lower, strings.ToLower(email)) {
			return true
		}
	}
	return false
}

// containsPhone compares digit tails: formatting differs between the card
// line and the normalized number, but the last seven digits survive both.
func containsPhone(line string, phones []string) bool {
	lineDigits := nonDigit.ReplaceAllString(line, "")
	for _, phone := range phones {
		phoneDigits := nonDigit.ReplaceAllString(phone, "")
		if len(phoneDigits) < 7 {
			continue
		}
		if strings.Contains(lineDigits, phoneDigits[len(phoneDigits)-7:]) {
			return true
		}
	}
	return false
}

func containsWebsite(line string, websites []string) bool {
	lower := strings.ToLower(line)
	for _, site := range websites {
		bare := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(site), "https://"), "http://")
		if bare != "" && strings.Contains(lower, bare) {
			return true
		}
	}
	return false
}

// isContactDetail catches contact lines whose field extraction failed:
// marker prefixes, stray @ signs, and phone-length digit runs.
func isContactDetail(line string) bool {
	return markerPrefix.MatchString(line) ||
		strings.Contains(line, "@") ||
		phoneShape.MatchString(line)
}
