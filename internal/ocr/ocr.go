// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ocr defines the boundary to the external image-to-text engine.
// The extraction pipeline treats whatever comes back as untrusted, noisy
// input; accuracy of the engine itself is not part of this module's
// contract.
package ocr

import (
	"context"
	"errors"
	"fmt"
)

// RecognitionResult is the raw output of a recognizer pass: the recognized
// text plus the engine's own confidence on a 0-100 scale.
type RecognitionResult struct {
	Text       string
	Confidence float64
}

// Input encapsulates a single image submitted for recognition.
type Input struct {
	// Image is the encoded image payload (PNG or JPEG).
	Image []byte
	// Languages is a list of trained-data hints (e.g. "eng").
	Languages []string
	// Params carries engine-specific knobs (e.g. Tesseract variables)
	// without hard-coding them into the API surface.
	Params map[string]string
}

// Recognizer is implemented by OCR engines. A single call is one-shot:
// no engine retries internally, cancellation comes from ctx.
type Recognizer interface {
	Name() string
	Recognize(ctx context.Context, in Input) (RecognitionResult, error)
}

// ErrNoText is returned by recognizers when the engine ran successfully but
// produced no usable text at all.
var ErrNoText = errors.New("ocr: no text recognized")

// DefaultParams returns the tuned engine parameter set for business-card
// input: a character whitelist covering card symbols and the dictionary
// penalties that suppress gibberish.
func DefaultParams() map[string]string {
	return map[string]string{
		"tessedit_char_whitelist":                   "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@.+-()[]{}/:;,!?&%# \n\r\t",
		"preserve_interword_spaces":                 "1",
		"classify_enable_learning":                  "0",
		"classify_enable_adaptive_matcher":          "1",
		"textord_noise_area_ratio":                  "0.7",
		"textord_heavy_nr":                          "1",
		"language_model_penalty_non_freq_dict_word": "0.1",
		"language_model_penalty_non_dict_word":      "0.15",
		"textord_min_xheight":                       "10",
		"textord_really_old_xheight":                "1",
	}
}

// ReducedParams returns the simpler parameter set used for the documented
// second-chance pass: a plain character whitelist and no language-model
// penalties.
func ReducedParams() map[string]string {
	return map[string]string{
		"tessedit_char_whitelist":   "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@.+-()[]{}/:;, \n\r\t",
		"preserve_interword_spaces": "1",
	}
}

// RecognizeWithFallback runs one full-parameter pass and, if it fails or
// yields no text, exactly one reduced-parameter pass. Retries never happen
// below this boundary; stages downstream are pure functions.
func RecognizeWithFallback(ctx context.Context, r Recognizer, in Input) (RecognitionResult, error) {
	if len(in.Params) == 0 {
		in.Params = DefaultParams()
	}

	res, err := r.Recognize(ctx, in)
	if err == nil && res.Text != "" {
		return res, nil
	}

	reduced := in
	reduced.Params = ReducedParams()
	res2, err2 := r.Recognize(ctx, reduced)
	if err2 != nil {
		if err != nil {
			return RecognitionResult{}, fmt.Errorf("recognize (after fallback pass): %w", errors.Join(err, err2))
		}
		return RecognitionResult{}, fmt.Errorf("recognize fallback pass: %w", err2)
	}
	if res2.Text == "" {
		return RecognitionResult{}, ErrNoText
	}
	return res2, nil
}

type noopRecognizer struct{}

func (noopRecognizer) Name() string { return "noop" }

func (noopRecognizer) Recognize(context.Context, Input) (RecognitionResult, error) {
	return RecognitionResult{}, ErrNoText
}

// NoopRecognizer returns a recognizer that always reports no text. Useful
// for wiring the pipeline in environments without an OCR engine.
func NoopRecognizer() Recognizer { return noopRecognizer{} }
