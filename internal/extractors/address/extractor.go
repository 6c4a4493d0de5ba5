// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package address scores every card line for address likelihood and joins
// the winners. Addresses are the one field that may span several lines, so
// up to three scoring lines are combined, with a P.O. Box line and a
// country line merged in that order when both exist.
package address

import (
	"regexp"
	"sort"
	"strings"

	"cardscan/internal/extractors"
	"cardscan/internal/geodata"
)

// Confidence assigned when any address line is found.
const Confidence = 70

// keepThreshold is the minimum score for a line to count as address text.
const keepThreshold = 15

// maxLines caps how many scoring lines are joined into the address.
const maxLines = 3

// keywords anywhere in a line each add 40 points. Street vocabulary,
// building vocabulary, postal terms, and the UAE localities the corpus
// actually prints.
var keywords = []string{
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd",
	"lane", "ln", "drive", "dr", "court", "ct", "place", "pl",
	"suite", "apt", "apartment", "building", "floor", "office", "unit",
	"po box", "p.o", "box",
	"dubai", "abu dhabi", "sharjah", "ajman", "uae", "emirates",
	"city", "tower", "center", "centre", "mall", "plaza",
}

var (
	leadingBox   = regexp.MustCompile(`(?i)^A\s+P\.O\.?\s*Box`)
	poBox        = regexp.MustCompile(`(?i)P\.O\.?\s*Box`)
	markerPrefix = regexp.MustCompile(`^[TFE]\s+`)
	anyDigits    = regexp.MustCompile(`\d+`)
	fiveDigits   = regexp.MustCompile(`\b\d{5}\b`)
	fourDigits   = regexp.MustCompile(`\b\d{4}\b`)
	localityWord = regexp.MustCompile(`(?i)(city|town|state|country|province|region|emirate)`)
	nonDigit     = regexp.MustCompile(`\D`)
)

type scored struct {
	line  string
	score float64
	index int
}

// Extract scores all lines (not just residual ones, since address lines
// often share space with phone numbers) and returns the joined address.
// used marks lines claimed by other extractors; emails and phones identify
// lines to exclude outright.
func Extract(lines []string, used map[int]bool, emails, phones []string) extractors.Candidate {
	var candidates []scored
	for i, raw := range lines {
		if used[i] {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		s := scoreLine(line, i, len(lines), emails, phones)
		if s > keepThreshold {
			candidates = append(candidates, scored{line: line, score: s, index: i})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxLines {
		candidates = candidates[:maxLines]
	}

	selected := make([]string, len(candidates))
	for i, c := range candidates {
		selected[i] = c.line
	}

	address := combine(selected)
	if address == "" {
		return extractors.Candidate{}
	}
	return extractors.Candidate{Value: address, Confidence: Confidence}
}

func scoreLine(line string, index, total int, emails, phones []string) float64 {
	lower := strings.ToLower(line)

	if repeatsEmail(lower, emails) || repeatsPhone(line, phones) {
		return -100
	}
	if strings.Contains(line, "@") || markerPrefix.MatchString(line) {
		return -100
	}

	var score float64
	if leadingBox.MatchString(line) {
		score += 80
	}
	if poBox.MatchString(line) {
		score += 70
	}

	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score += 40
		}
	}

	if anyDigits.MatchString(line) {
		score += 30
	}
	if fiveDigits.MatchString(line) {
		score += 35
	}
	if fourDigits.MatchString(line) {
		score += 25
	}

	if geodata.CountryPattern.MatchString(line) {
		score += 60
	}
	if geodata.CityPattern.MatchString(line) {
		score += 50
	}
	if localityWord.MatchString(line) {
		score += 30
	}

	if len(line) >= 10 && len(line) <= 120 {
		score += 20
	}

	// Addresses sit at the bottom of the card.
	if index >= total-5 {
		score += 30
	} else if index >= total-8 {
		score += 20
	}

	return score
}

func repeatsEmail(lower string, emails []string) bool {
	for _, email := range emails {
		if strings.Contains(lower, strings.ToLower(email)) {
			return true
		}
	}
	return false
}

func repeatsPhone(line string, phones []string) bool {
	lineDigits := nonDigit.ReplaceAllString(line, "")
	for _, phone := range phones {
		phoneDigits := nonDigit.ReplaceAllString(phone, "")
		if len(phoneDigits) >= 7 && strings.Contains(lineDigits, phoneDigits[len(phoneDigits)-7:]) {
			return true
		}
	}
	return false
}

// combine joins the selected lines. When both a P.O. Box line and a
// country line were kept, only those two are joined, box first, so the
// comma-split downstream sees "box, city, country" shaped input.
func combine(selected []string) string {
	var boxLine, countryLine string
	for _, line := range selected {
		if boxLine == "" && poBox.MatchString(line) {
			boxLine = line
		}
		if countryLine == "" && (geodata.CountryPattern.MatchString(line) || geodata.CityPattern.MatchString(line)) {
			countryLine = line
		}
	}
	if boxLine != "" && countryLine != "" && boxLine != countryLine {
		return boxLine + ", " + countryLine
	}
	return strings.Join(selected, ", ")
}
