// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textclean normalizes raw recognition output before any field
// extraction runs. It drops garbage lines, filters non-English text,
// repairs known character substitutions, and scores the overall quality of
// what survived. Cleaning is idempotent: cleaning cleaned text changes
// nothing and costs no further quality.
package textclean

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// CleanedText is the cleaner's output: surviving lines in original order
// plus a 0-100 quality score derived from the input confidence and the
// damage found along the way.
type CleanedText struct {
	Lines        []string
	QualityScore float64
}

// Text joins the surviving lines back into newline-separated text.
func (c CleanedText) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Scoring holds the cleaner's tunable score adjustments. Zero value is not
// useful; start from DefaultScoring.
type Scoring struct {
	// GarbagePenalty is subtracted per dropped garbage line.
	GarbagePenalty float64 `yaml:"garbage_penalty"`
	// RejectPenalty is subtracted per line that fails text validation.
	RejectPenalty float64 `yaml:"reject_penalty"`
	// CardShapeBonus is added once when the result looks like a card.
	CardShapeBonus float64 `yaml:"card_shape_bonus"`
}

// DefaultScoring returns the tuned score adjustments.
func DefaultScoring() Scoring {
	return Scoring{
		GarbagePenalty: 2,
		RejectPenalty:  1,
		CardShapeBonus: 10,
	}
}

// Cleaner applies the line filters and scoring rules. Safe for concurrent
// use; it holds only immutable tables.
type Cleaner struct {
	scoring Scoring
}

// NewCleaner creates a cleaner with the given scoring.
func NewCleaner(scoring Scoring) *Cleaner {
	return &Cleaner{scoring: scoring}
}

// Clean runs the full cleaning pass. inputConfidence seeds the quality
// score and normally comes from the recognition engine; pass 100 for text
// of known provenance.
func (c *Cleaner) Clean(rawText string, inputConfidence float64) CleanedText {
	quality := inputConfidence
	var kept []string

	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		line = c.filterNonEnglish(line)
		if line == "" {
			continue
		}

		if isGarbage(line) {
			quality -= c.scoring.GarbagePenalty
			continue
		}

		// Contact lines carry the characters the extractors key on.
		// They pass untouched; "repairing" them loses digits.
		if isContactInfo(line) {
			kept = append(kept, line)
			continue
		}

		cleaned := cleanTextLine(line)
		if cleaned != "" && isValidTextLine(cleaned) {
			kept = append(kept, cleaned)
		} else {
			quality -= c.scoring.RejectPenalty
		}
	}

	if hasCardShape(kept) {
		quality += c.scoring.CardShapeBonus
	}

	return CleanedText{
		Lines:        kept,
		QualityScore: clamp(quality, 0, 100),
	}
}

// filterNonEnglish strips non-Latin characters from prose lines and drops
// lines that were mostly non-English to begin with. Cards in this corpus
// are bilingual Arabic/English; only the English side is extracted.
// Contact lines bypass the filter for the same reason they bypass repair.
func (c *Cleaner) filterNonEnglish(line string) string {
	if strings.ContainsAny(line, "@+") || leadingDigitOrMarker.MatchString(line) || contactMarkerPrefix.MatchString(line) {
		return line
	}

	englishOnly := strings.TrimSpace(nonEnglishChars.ReplaceAllString(line, ""))
	if float64(len(englishOnly)) < float64(len(line))*0.5 && !longDigitRun.MatchString(line) {
		return ""
	}
	if englishOnly != line && englishOnly != "" {
		// The strip changed the line, so it had non-Latin content. Confirm
		// with language detection before keeping the Latin remainder of a
		// line that is actually foreign prose.
		info := whatlanggo.Detect(line)
		if info.IsReliable() && info.Lang.Iso6391() != "en" {
			return ""
		}
	}
	return englishOnly
}

// cleanTextLine repairs one prose line: known substitutions, whitespace
// collapse, and digit-for-letter fixes on short title-case lines where 0/1
// are almost always O/I misreads.
func cleanTextLine(line string) string {
	cleaned := strings.TrimSpace(line)

	if fixed, ok := substitutions[cleaned]; ok {
		cleaned = fixed
	}

	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if garbagePairPattern.MatchString(cleaned) && !honorificHint.MatchString(cleaned) {
		return ""
	}

	if startsUpperPattern.MatchString(cleaned) && len(cleaned) <= 20 {
		cleaned = strings.ReplaceAll(cleaned, "0", "O")
		cleaned = strings.ReplaceAll(cleaned, "1", "I")
	}

	return cleaned
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
