// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone extracts phone and fax numbers from cleaned card text.
// Cards in this corpus are UAE-heavy, so the pattern table leads with UAE
// mobile and landline shapes before the generic international ones. The
// "T "/"F " markers printed on cards survive extraction as type markers
// consumed later by the contact builder.
package phone

import (
	"regexp"
	"strings"
)

// Extractor matches, normalizes and types phone numbers. Create with New.
type Extractor struct {
	patterns []phonePattern
	nonPhone *regexp.Regexp
	digits   *regexp.Regexp
	uaeLocal *regexp.Regexp
}

type phonePattern struct {
	name    string
	pattern *regexp.Regexp
}

// New creates a phone extractor with the pattern table compiled. Order
// matters: specific prefixed shapes must win before the generic patterns
// eat their digits.
func New() *Extractor {
	return &Extractor{
		patterns: []phonePattern{
			{name: "uae_mobile", pattern: regexp.MustCompile(`\+?971[-.\s]?5[0568][-.\s]?\d{3}[-.\s]?\d{4}`)},
			{name: "uae_landline", pattern: regexp.MustCompile(`\+?971[-.\s]?[2-4679][-.\s]?\d{3}[-.\s]?\d{4}`)},
			{name: "tel_marker", pattern: regexp.MustCompile(`T\s+\+?971[-.\s]?\d{1,2}[-.\s]?\d{3,4}[-.\s]?\d{4}`)},
			{name: "fax_marker", pattern: regexp.MustCompile(`F\s+\+?971[-.\s]?\d{1,2}[-.\s]?\d{3,4}[-.\s]?\d{4}`)},
			{name: "uae_general", pattern: regexp.MustCompile(`(\+?971[-.\s]?)?\(?\d{1,2}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`)},
			{name: "international", pattern: regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)},
			{name: "plain_ten", pattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
			{name: "paren_area", pattern: regexp.MustCompile(`\b\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
		},
		nonPhone: regexp.MustCompile(`[^\d+]`),
		digits:   regexp.MustCompile(`\d`),
		uaeLocal: regexp.MustCompile(`^[2-79]`),
	}
}

// Extract returns normalized numbers in first-seen order, deduplicated.
// Numbers that carried a "T " or "F " marker on the card keep it, so
// "T +971 2 445 0707" and the bare "+971 2 445 0707" are distinct entries.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, p := range e.patterns {
		for _, match := range p.pattern.FindAllString(text, -1) {
			match = strings.TrimSpace(match)

			marker := ""
			number := match
			switch {
			case strings.HasPrefix(match, "T "):
				marker = "T "
				number = strings.TrimSpace(match[2:])
			case strings.HasPrefix(match, "F "):
				marker = "F "
				number = strings.TrimSpace(match[2:])
			}

			normalized := e.Normalize(number)
			if !e.Validate(normalized) {
				continue
			}
			display := marker + normalized
			if seen[display] {
				continue
			}
			seen[display] = true
			out = append(out, display)
		}
	}
	return preferMarked(out)
}

// preferMarked drops a bare number when the same number was also matched
// with its "T " or "F " marker. The generic patterns always re-match a
// marked line without its marker; the marked entry is the one that knows
// the number's type.
func preferMarked(numbers []string) []string {
	marked := make(map[string]bool)
	for _, n := range numbers {
		if strings.HasPrefix(n, "T ") || strings.HasPrefix(n, "F ") {
			marked[strings.TrimSpace(n[2:])] = true
		}
	}
	if len(marked) == 0 {
		return numbers
	}

	out := numbers[:0]
	for _, n := range numbers {
		if !strings.HasPrefix(n, "T ") && !strings.HasPrefix(n, "F ") && marked[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Normalize strips formatting and renders UAE numbers as
// "+971 X XXX XXXX". A nine-digit local number starting 2-7 or 9 gets the
// +971 country code; other countries pass through digits-and-plus only.
func (e *Extractor) Normalize(number string) string {
	cleaned := e.nonPhone.ReplaceAllString(number, "")

	if len(cleaned) == 9 && e.uaeLocal.MatchString(cleaned) {
		cleaned = "+971" + cleaned
	}

	if strings.HasPrefix(cleaned, "+971") || strings.HasPrefix(cleaned, "971") {
		local := strings.TrimPrefix(strings.TrimPrefix(cleaned, "+"), "971")
		if len(local) >= 5 {
			return "+971 " + local[:1] + " " + local[1:4] + " " + local[4:]
		}
	}

	return cleaned
}

// Validate accepts numbers with 7 to 15 digits inclusive.
func (e *Extractor) Validate(number string) bool {
	n := len(e.digits.FindAllString(number, -1))
	return n >= 7 && n <= 15
}
