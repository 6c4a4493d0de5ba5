// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tesseract provides the gosseract-backed implementation of
// ocr.Recognizer. Requires the Tesseract C library at build time.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"cardscan/internal/ocr"
)

// Engine recognizes text using a local Tesseract installation through the
// gosseract client. A fresh client is created per call; gosseract clients
// are not safe for concurrent reuse.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// NewEngine constructs a Tesseract-backed recognizer.
func NewEngine() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs one OCR pass over the input image. Engine parameters
// come from in.Params; callers that want the tuned business-card set pass
// ocr.DefaultParams().
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.RecognitionResult, error) {
	select {
	case <-ctx.Done():
		return ocr.RecognitionResult{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.RecognitionResult{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return ocr.RecognitionResult{}, fmt.Errorf("set languages: %w", err)
		}
	}
	for k, v := range in.Params {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return ocr.RecognitionResult{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return ocr.RecognitionResult{}, fmt.Errorf("recognize text: %w", err)
	}
	plain := strings.TrimSpace(text)
	if plain == "" {
		return ocr.RecognitionResult{}, ocr.ErrNoText
	}

	return ocr.RecognitionResult{
		Text:       plain,
		Confidence: averageWordConfidence(c),
	}, nil
}

// averageWordConfidence averages Tesseract's per-word confidences on the
// 0-100 scale. Falls back to 50 when word boxes are unavailable so the
// pipeline still has a workable midpoint.
func averageWordConfidence(c *gosseract.Client) float64 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 50
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes))
}
