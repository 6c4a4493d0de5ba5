// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractors holds the shared types of the field extraction stages.
// Each concrete extractor lives in its own subpackage and returns values
// with fixed per-field confidences; selection between alternatives happens
// inside the extractor, not in the caller.
package extractors

// Candidate is one extracted field value with its confidence, 0-100.
type Candidate struct {
	Value      string
	Confidence float64
}

// Fixed confidences of the pattern-based extractors. Pattern matches are
// either right or mangled beyond matching, so per-match scoring adds
// nothing; the tiers only express how often each field's patterns misfire.
const (
	EmailConfidence   = 85
	PhoneConfidence   = 80
	WebsiteConfidence = 75
)
