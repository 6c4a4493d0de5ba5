// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package name picks the person's name out of the residual card lines.
// There is no reliable pattern for a name, so every line is scored on
// shape, capitalization and position, and the best line above threshold
// wins. Anything that reads like a company is disqualified outright.
package name

import (
	"regexp"
	"sort"
	"strings"

	"cardscan/internal/extractors"
)

// acceptThreshold is the minimum score a line needs to be accepted as a
// name at all.
const acceptThreshold = 40

// companyIndicators disqualify a line from being a person. Substring
// match, lowercase.
var companyIndicators = []string{
	"llc", "inc", "corp", "ltd", "company", "co.", "&", "and", "group",
	"fze", "fzco", "establishment", "est", "trading", "contracting",
}

var (
	nameChars       = regexp.MustCompile(`[^a-zA-Z\s.\-]`)
	properWord      = regexp.MustCompile(`^[A-Z][a-z]+$`)
	initialWord     = regexp.MustCompile(`^[A-Z]\.?$`)
	hyphenatedWord  = regexp.MustCompile(`^[A-Z][a-z]+-[A-Z][a-z]+$`)
	apostropheWord  = regexp.MustCompile(`^[A-Z]'[A-Z][a-z]+$`)
	honorificPrefix = regexp.MustCompile(`(?i)^(Mr|Mrs|Ms|Dr|Prof|Sir|Dame)\.?\s+`)
	digitRun        = regexp.MustCompile(`\+?\d{3,}`)
	anyDigit        = regexp.MustCompile(`\d`)
	urlSuffix       = regexp.MustCompile(`\.(com|org|net|ae|co)`)
	addressHint     = regexp.MustCompile(`(?i)P\.O\.?\s*Box|Abu Dhabi|Dubai|UAE`)
	firstLast       = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)
	firstInitLast   = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]\.\s+[A-Z][a-z]+$`)
	firstMidLast    = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+\s+[A-Z][a-z]+$`)
)

type scored struct {
	line  string
	score float64
	index int
}

// Extract scores every line and returns the best candidate plus its line
// index, or an empty candidate and -1 when nothing clears the threshold.
// The returned value has any honorific prefix already stripped; the
// confidence is the score capped at 95.
func Extract(lines []string) (extractors.Candidate, int) {
	if len(lines) == 0 {
		return extractors.Candidate{}, -1
	}

	candidates := make([]scored, 0, len(lines))
	for i, line := range lines {
		value, score := scoreLine(strings.TrimSpace(line), i)
		candidates = append(candidates, scored{line: value, score: score, index: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for _, c := range candidates {
		if c.score > acceptThreshold {
			return extractors.Candidate{
				Value:      strings.TrimSpace(c.line),
				Confidence: min95(c.score),
			}, c.index
		}
	}
	return extractors.Candidate{}, -1
}

// HasCompanyIndicators reports whether the line names a business rather
// than a person.
func HasCompanyIndicators(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range companyIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// scoreLine returns the line (honorific stripped) and its name score.
func scoreLine(line string, index int) (string, float64) {
	if line == "" || HasCompanyIndicators(line) || len(line) < 2 {
		return line, -100
	}

	nameOnly := strings.TrimSpace(nameChars.ReplaceAllString(line, ""))
	if len(nameOnly) < 2 {
		return line, -100
	}

	words := meaningfulWords(nameOnly)
	var score float64

	switch {
	case len(words) == 2:
		score += 80
	case len(words) == 3:
		score += 75
	case len(words) == 1 && len(nameOnly) >= 3:
		score += 40
	case len(words) == 4:
		score += 45
	case len(words) >= 5:
		score -= 40
	}

	properCap := len(words) > 0
	for _, w := range words {
		if !isNameWord(w) {
			properCap = false
			break
		}
	}
	if properCap {
		score += 70
	}

	// Names cluster near the top of a card, just under the logo line.
	switch {
	case index == 0:
		score += 60
	case index == 1:
		score += 80
	case index == 2:
		score += 70
	case index <= 4:
		score += 40
	case index <= 7:
		score += 20
	default:
		score -= 20
	}

	if len(line) >= 3 && len(line) <= 50 {
		score += 35
	}
	if len(line) >= 5 && len(line) <= 30 {
		score += 25
	}

	if line == strings.ToUpper(line) && len(line) > 8 {
		score -= 70
	}

	if honorificPrefix.MatchString(line) {
		score += 30
		return strings.TrimSpace(honorificPrefix.ReplaceAllString(line, "")), score
	}

	if anyDigit.MatchString(line) {
		score -= 60
	}
	if strings.Contains(line, "@") {
		score -= 150
	}
	if digitRun.MatchString(line) {
		score -= 80
	}
	if urlSuffix.MatchString(strings.ToLower(line)) {
		score -= 150
	}
	if addressHint.MatchString(line) {
		score -= 100
	}

	if firstLast.MatchString(line) {
		score += 50
	}
	if firstInitLast.MatchString(line) {
		score += 45
	}
	if firstMidLast.MatchString(line) {
		score += 40
	}

	if len(words) >= 2 && properCap && !strings.ContainsAny(line, "0123456789@+.") {
		score += 60
	}

	return line, score
}

func meaningfulWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > 1 {
			out = append(out, w)
		}
	}
	return out
}

func isNameWord(w string) bool {
	return properWord.MatchString(w) ||
		initialWord.MatchString(w) ||
		hyphenatedWord.MatchString(w) ||
		apostropheWord.MatchString(w)
}

func min95(score float64) float64 {
	if score > 95 {
		return 95
	}
	return score
}
