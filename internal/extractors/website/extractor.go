// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package website extracts web addresses from cleaned card text. Emails
// share most of a URL's alphabet, so validation rejects anything with an @
// before the usual domain checks.
package website

import (
	"regexp"
	"strings"
)

// Extractor matches and normalizes website URLs. Create with New.
type Extractor struct {
	patterns   []sitePattern
	label      *regexp.Regexp
	scheme     *regexp.Regexp
	domainLike *regexp.Regexp
	knownTLD   *regexp.Regexp
	emailLike  *regexp.Regexp
}

type sitePattern struct {
	name    string
	pattern *regexp.Regexp
}

// New creates a website extractor with the pattern table compiled.
func New() *Extractor {
	return &Extractor{
		patterns: []sitePattern{
			{name: "full_url", pattern: regexp.MustCompile(`(?i)(https?://)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)`)},
			{name: "bare_domain", pattern: regexp.MustCompile(`(?i)\b(?:www\.)?[a-zA-Z0-9-]+\.(com|org|net|edu|gov|ae|co\.ae|io|tech|biz|info|co\.uk|co|me|tv|cc)\b`)},
		},
		label:      regexp.MustCompile(`(?i)^(website|url|web):\s*`),
		scheme:     regexp.MustCompile(`(?i)^https?://`),
		domainLike: regexp.MustCompile(`(?i)^www\.|^[a-zA-Z0-9-]+\.[a-zA-Z]{2,}`),
		knownTLD:   regexp.MustCompile(`\.(com|org|net|edu|gov|ae|co\.ae|io|tech|biz|info|co\.uk|co|me|tv|cc)`),
		emailLike:  regexp.MustCompile(`^[a-z0-9._%+-]+@`),
	}
}

// Extract returns valid, normalized URLs in first-seen order, deduplicated.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, p := range e.patterns {
		for _, match := range p.pattern.FindAllString(text, -1) {
			cleaned := e.Normalize(match)
			if cleaned == "" || !e.Validate(cleaned) || seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			out = append(out, cleaned)
		}
	}
	return out
}

// Normalize strips "Website:"-style labels and prepends https:// to bare
// domains. Existing schemes are preserved.
func (e *Extractor) Normalize(url string) string {
	cleaned := e.label.ReplaceAllString(strings.TrimSpace(url), "")
	if !e.scheme.MatchString(cleaned) && e.domainLike.MatchString(cleaned) {
		cleaned = "https://" + cleaned
	}
	return cleaned
}

// Validate accepts dotted, @-free strings longer than five characters whose
// TLD is on the known list.
func (e *Extractor) Validate(url string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(url))
	if strings.Contains(cleaned, "@") {
		return false
	}
	return strings.Contains(cleaned, ".") &&
		len(cleaned) > 5 &&
		e.knownTLD.MatchString(cleaned) &&
		!e.emailLike.MatchString(cleaned)
}

// FromEmailDomain derives a fallback website from an email address when no
// URL was printed on the card. Empty input yields empty output.
func FromEmailDomain(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[1] == "" {
		return ""
	}
	return "https://" + parts[1]
}
