// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline composes the extraction stages into the two entry
// points of the module: ScanBusinessCard for image input behind a
// recognizer, and ProcessText for already-recognized text. All stages
// after recognition are pure; the same text always yields the same
// contact.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"cardscan/internal/config"
	"cardscan/internal/contact"
	"cardscan/internal/extractors"
	"cardscan/internal/extractors/address"
	"cardscan/internal/extractors/email"
	"cardscan/internal/extractors/lines"
	"cardscan/internal/extractors/name"
	"cardscan/internal/extractors/orgtitle"
	"cardscan/internal/extractors/phone"
	"cardscan/internal/extractors/website"
	"cardscan/internal/logocolor"
	"cardscan/internal/observability"
	"cardscan/internal/ocr"
	"cardscan/internal/preprocess"
	"cardscan/internal/textclean"
)

// Result is the complete outcome of one scan.
type Result struct {
	Contact contact.Contact `json:"contact" yaml:"contact"`
	// Confidence is the overall 0-100 score: the recognition confidence
	// capped by the cleaner's quality score.
	Confidence       float64              `json:"confidence" yaml:"confidence"`
	FieldConfidences map[string]float64   `json:"field_confidences" yaml:"field_confidences"`
	LogoColors       []logocolor.ColorInfo `json:"logo_colors,omitempty" yaml:"logo_colors,omitempty"`
	// Alternatives holds extracted values that lost to the chosen one,
	// keyed by field.
	Alternatives map[string][]string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Pipeline wires the stages together. Create with New; safe for
// concurrent use.
type Pipeline struct {
	cfg      *config.Config
	cleaner  *textclean.Cleaner
	emails   *email.Extractor
	phones   *phone.Extractor
	websites *website.Extractor
	observer *observability.StandardObserver
}

// New creates a pipeline from configuration. observer may be nil.
func New(cfg *config.Config, observer *observability.StandardObserver) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		cleaner:  textclean.NewCleaner(cfg.Cleaner),
		emails:   email.New(),
		phones:   phone.New(),
		websites: website.New(),
		observer: observer,
	}
}

// ScanBusinessCard runs the full chain over an encoded card image:
// preprocessing, logo color sampling, recognition with the one-shot
// reduced-parameter fallback, then text extraction.
func (p *Pipeline) ScanBusinessCard(ctx context.Context, image []byte, engine ocr.Recognizer) (Result, error) {
	done := p.observer.StartTiming("pipeline", "scan_business_card")

	prepared := image
	if p.cfg.Preprocess.Enabled {
		// ForOCR degrades to the original bytes on any failure.
		prepared, _ = preprocess.ForOCR(image)
	}

	var colors []logocolor.ColorInfo
	if p.cfg.LogoColors.Enabled {
		colors = logocolor.Extract(image)
	}

	in := ocr.Input{
		Image:     prepared,
		Languages: p.cfg.OCR.Languages,
		Params:    ocr.DefaultParams(),
	}

	var recognized ocr.RecognitionResult
	var err error
	if p.cfg.OCR.Fallback {
		recognized, err = ocr.RecognizeWithFallback(ctx, engine, in)
	} else {
		recognized, err = engine.Recognize(ctx, in)
	}
	if err != nil {
		done(false, map[string]interface{}{"engine": engine.Name()})
		return Result{}, fmt.Errorf("recognize card: %w", err)
	}

	result := p.ProcessText(recognized.Text, recognized.Confidence)
	result.LogoColors = colors

	done(true, map[string]interface{}{
		"engine":     engine.Name(),
		"confidence": result.Confidence,
	})
	return result, nil
}

// ProcessText runs the pure text stages: clean, extract fields, classify
// residual lines, extract contextual fields, build the contact.
// inputConfidence is the recognition engine's 0-100 confidence; use 100
// for trusted text.
func (p *Pipeline) ProcessText(text string, inputConfidence float64) Result {
	done := p.observer.StartTiming("pipeline", "process_text")

	cleaned := p.cleaner.Clean(text, inputConfidence)
	cleanText := cleaned.Text()

	emails := p.emails.Extract(cleanText)
	phones := p.phones.Extract(cleanText)
	websites := p.websites.Extract(cleanText)

	fieldConfidences := make(map[string]float64)
	if len(emails) > 0 {
		fieldConfidences["email"] = extractors.EmailConfidence
	}
	if len(phones) > 0 {
		fieldConfidences["phone"] = extractors.PhoneConfidence
	}
	if len(websites) > 0 {
		fieldConfidences["website"] = extractors.WebsiteConfidence
	}

	residual := lines.Residual(cleaned.Lines, emails, phones, websites)

	nameCandidate, nameIdx := name.Extract(residual)
	used := make(map[int]bool)
	if nameIdx >= 0 {
		used[nameIdx] = true
	} else {
		// No name among the residual lines; retry against everything.
		// A name line sharing space with a phone number is rare but real.
		nameCandidate, _ = name.Extract(cleaned.Lines)
	}
	if nameCandidate.Value != "" {
		fieldConfidences["name"] = nameCandidate.Confidence
	}

	ot := orgtitle.Extract(residual, used, nameCandidate.Value, emails)
	if ot.Organization.Value != "" {
		fieldConfidences["organization"] = ot.Organization.Confidence
	}
	if ot.Title.Value != "" {
		fieldConfidences["title"] = ot.Title.Confidence
	}

	// Address lines often share space with phones, so the address scorer
	// sees every cleaned line, not just the residual ones. Lines claimed
	// as name, organization or title are mapped back by value; residual
	// indexes do not line up with cleaned indexes.
	claimed := make(map[string]bool)
	for idx := range used {
		claimed[residual[idx]] = true
	}
	addrUsed := make(map[int]bool)
	for i, line := range cleaned.Lines {
		if claimed[strings.TrimSpace(line)] {
			addrUsed[i] = true
		}
	}
	addr := address.Extract(cleaned.Lines, addrUsed, emails, phones)
	if addr.Value != "" {
		fieldConfidences["address"] = addr.Confidence
	}

	built := contact.Build(contact.Fields{
		Name:     nameCandidate.Value,
		Emails:   emails,
		Phones:   phones,
		Websites: websites,
		Org:      ot.Organization.Value,
		Title:    ot.Title.Value,
		Address:  addr.Value,
	})

	confidence := inputConfidence
	if cleaned.QualityScore < confidence {
		confidence = cleaned.QualityScore
	}

	result := Result{
		Contact:          built,
		Confidence:       confidence,
		FieldConfidences: fieldConfidences,
		Alternatives:     alternatives(emails, phones, websites),
	}

	done(true, map[string]interface{}{
		"lines":      len(cleaned.Lines),
		"quality":    cleaned.QualityScore,
		"confidence": confidence,
	})
	return result
}

// alternatives records values that lost the per-field selection: extra
// emails and websites beyond the first, phones beyond the three shown.
func alternatives(emails, phones, websites []string) map[string][]string {
	alt := make(map[string][]string)
	if rest := lo.Drop(emails, 1); len(rest) > 0 {
		alt["email"] = rest
	}
	if rest := lo.Drop(phones, 3); len(rest) > 0 {
		alt["phone"] = rest
	}
	if rest := lo.Drop(websites, 1); len(rest) > 0 {
		alt["website"] = rest
	}
	if len(alt) == 0 {
		return nil
	}
	return alt
}
