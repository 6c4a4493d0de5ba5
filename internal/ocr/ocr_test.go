// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

import (
	"context"
	"errors"
	"testing"
)

type scriptedRecognizer struct {
	results []RecognitionResult
	errs    []error
	calls   int
	params  []map[string]string
}

func (s *scriptedRecognizer) Name() string { return "scripted" }

func (s *scriptedRecognizer) Recognize(_ context.Context, in Input) (RecognitionResult, error) {
	i := s.calls
	s.calls++
	s.params = append(s.params, in.Params)
	return s.results[i], s.errs[i]
}

func TestRecognizeWithFallbackFirstPassWins(t *testing.T) {
	r := &scriptedRecognizer{
		results: []RecognitionResult{{Text: "Ahmed Hassan", Confidence: 92}},
		errs:    []error{nil},
	}

	got, err := RecognizeWithFallback(context.Background(), r, Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "Ahmed Hassan" || got.Confidence != 92 {
		t.Errorf("result = %+v", got)
	}
	if r.calls != 1 {
		t.Errorf("calls = %d, want 1", r.calls)
	}
}

func TestRecognizeWithFallbackSecondPass(t *testing.T) {
	r := &scriptedRecognizer{
		results: []RecognitionResult{{}, {Text: "Ahmed Hassan", Confidence: 60}},
		errs:    []error{errors.New("engine crashed"), nil},
	}

	got, err := RecognizeWithFallback(context.Background(), r, Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "Ahmed Hassan" {
		t.Errorf("result = %+v", got)
	}
	if r.calls != 2 {
		t.Errorf("calls = %d, want 2", r.calls)
	}
	// The second pass must use the reduced parameter set.
	if _, ok := r.params[1]["language_model_penalty_non_dict_word"]; ok {
		t.Error("fallback pass still carries the tuned language-model penalties")
	}
}

func TestRecognizeWithFallbackEmptyTextTriggersFallback(t *testing.T) {
	r := &scriptedRecognizer{
		results: []RecognitionResult{{Text: ""}, {Text: "recovered", Confidence: 50}},
		errs:    []error{nil, nil},
	}

	got, err := RecognizeWithFallback(context.Background(), r, Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "recovered" {
		t.Errorf("result = %+v", got)
	}
}

func TestRecognizeWithFallbackBothFail(t *testing.T) {
	first := errors.New("first failure")
	second := errors.New("second failure")
	r := &scriptedRecognizer{
		results: []RecognitionResult{{}, {}},
		errs:    []error{first, second},
	}

	_, err := RecognizeWithFallback(context.Background(), r, Input{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Errorf("error should wrap both passes, got: %v", err)
	}
	if r.calls != 2 {
		t.Errorf("calls = %d, want exactly 2 (no retry loop)", r.calls)
	}
}

func TestRecognizeWithFallbackNoTextAtAll(t *testing.T) {
	r := &scriptedRecognizer{
		results: []RecognitionResult{{}, {}},
		errs:    []error{nil, nil},
	}

	_, err := RecognizeWithFallback(context.Background(), r, Input{})
	if !errors.Is(err, ErrNoText) {
		t.Errorf("err = %v, want ErrNoText", err)
	}
}

func TestNoopRecognizer(t *testing.T) {
	_, err := NoopRecognizer().Recognize(context.Background(), Input{})
	if !errors.Is(err, ErrNoText) {
		t.Errorf("err = %v, want ErrNoText", err)
	}
}
