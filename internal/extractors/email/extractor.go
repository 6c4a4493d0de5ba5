// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email extracts email addresses from cleaned card text, including
// addresses damaged by recognition: spaces inside the domain and a dropped
// dot before the TLD are both repaired before validation.
package email

import (
	"regexp"
	"strings"
)

// Extractor matches and repairs email addresses. Create with New; the
// zero value has no patterns.
type Extractor struct {
	patterns []emailPattern
	// spacedDomain catches "user@ sicurouae ae" shapes where the domain
	// lost its dot and gained spaces.
	spacedDomain *regexp.Regexp
	// droppedDot catches "user@domain tld" where only the final dot is
	// missing.
	droppedDot *regexp.Regexp
	sanitize   *regexp.Regexp
}

type emailPattern struct {
	name    string
	pattern *regexp.Regexp
	// prefix is stripped from the match before validation ("E ", "Email:").
	prefix *regexp.Regexp
}

// New creates an email extractor with all patterns compiled.
func New() *Extractor {
	return &Extractor{
		patterns: []emailPattern{
			{
				name:    "standard",
				pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
			},
			{
				name:    "letter_prefix",
				pattern: regexp.MustCompile(`E\s+[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
				prefix:  regexp.MustCompile(`^E\s+`),
			},
			{
				name:    "label_prefix",
				pattern: regexp.MustCompile(`(?i)(?:Email|Mail):\s*[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
				prefix:  regexp.MustCompile(`(?i)^(?:Email|Mail):\s*`),
			},
		},
		spacedDomain: regexp.MustCompile(`([a-zA-Z0-9._%+-]+)\s*@\s*([a-zA-Z0-9.-]+\s+[a-zA-Z]{2,})`),
		droppedDot:   regexp.MustCompile(`([a-zA-Z0-9._%+-]+)@([a-zA-Z0-9]+)\s+([a-zA-Z]{2,3})\b`),
		sanitize:     regexp.MustCompile(`[^\w@.\-]`),
	}
}

// Extract returns the valid, lowercased, deduplicated addresses found in
// text, in first-seen order.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(candidate string) {
		normalized := strings.ToLower(strings.TrimSpace(candidate))
		if !e.Validate(normalized) || seen[normalized] {
			return
		}
		seen[normalized] = true
		out = append(out, normalized)
	}

	for _, p := range e.patterns {
		for _, match := range p.pattern.FindAllString(text, -1) {
			if p.prefix != nil {
				match = p.prefix.ReplaceAllString(match, "")
			}
			add(match)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, m := range e.spacedDomain.FindAllStringSubmatch(line, -1) {
			fields := strings.Fields(m[2])
			domain := strings.Join(fields, "")
			if !strings.Contains(domain, ".") && len(fields) > 1 {
				// The spaces stand where the lost dots were.
				domain = strings.Join(fields, ".")
			}
			add(m[1] + "@" + domain)
		}
		for _, m := range e.droppedDot.FindAllStringSubmatch(line, -1) {
			add(m[1] + "@" + m[2] + "." + m[3])
		}
	}

	return out
}

// Validate reports whether candidate is a plausible address: exactly one @,
// a non-empty local part, and a dotted domain longer than three characters.
func (e *Extractor) Validate(candidate string) bool {
	cleaned := e.sanitize.ReplaceAllString(strings.ToLower(candidate), "")
	parts := strings.Split(cleaned, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	return local != "" && strings.Contains(domain, ".") && len(domain) > 3
}
