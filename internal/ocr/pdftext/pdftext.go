// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext recognizes text from PDF card scans that carry a text
// layer. No visual recognition happens here, so the confidence is fixed
// high; the noise a text layer has is layout noise, not glyph noise.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"cardscan/internal/ocr"
)

// TextLayerConfidence is reported for every non-empty extraction: the glyphs
// are exact, only line segmentation can be wrong.
const TextLayerConfidence = 95

// Engine implements ocr.Recognizer over the PDF text layer.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (*Engine) Name() string { return "pdftext" }

// Recognize extracts the text layer of the first pages of a PDF. Business
// cards are single-page; multi-page input is concatenated in page order.
func (*Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.RecognitionResult, error) {
	select {
	case <-ctx.Done():
		return ocr.RecognitionResult{}, ctx.Err()
	default:
	}

	r, err := pdf.NewReader(bytes.NewReader(in.Image), int64(len(in.Image)))
	if err != nil {
		return ocr.RecognitionResult{}, fmt.Errorf("open pdf: %w", err)
	}

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := pageText(p)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	plain := strings.TrimSpace(buf.String())
	if plain == "" {
		return ocr.RecognitionResult{}, ocr.ErrNoText
	}
	return ocr.RecognitionResult{Text: plain, Confidence: TextLayerConfidence}, nil
}

// pageText reconstructs one page top-to-bottom using row positions, so the
// line order downstream heuristics depend on survives extraction.
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	// PDF Y grows bottom-to-top; highest Y is the top line of the card.
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) > averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := rowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// rowText joins a row's text elements left to right, inserting a space
// wherever the horizontal gap exceeds 20% of the font size.
func rowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (e.X + e.W)
		fontSize := e.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}
