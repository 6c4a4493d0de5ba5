// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logocolor samples the dominant colors of a card image. Logos sit
// in the top quarter of most cards, so that region is weighted double in
// the census. The result is presentation data only; extraction correctness
// never depends on it.
package logocolor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"sort"
)

// ColorInfo is one dominant color with its share of sampled pixels.
type ColorInfo struct {
	Hex       string  `json:"hex" yaml:"hex"`
	RGB       string  `json:"rgb" yaml:"rgb"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

const (
	// sampleStep walks the pixel grid every N pixels in both axes.
	sampleStep = 4
	// quantStep buckets each channel to suppress gradient noise.
	quantStep = 24
	// maxColors is how many census winners are reported.
	maxColors = 5
)

// Extract runs the quantized color census over an encoded image and returns
// up to five dominant colors, most frequent first. Undecodable input yields
// an empty slice, never an error; colors are decorative.
func Extract(img []byte) []ColorInfo {
	decoded, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return nil
	}
	return dominantColors(decoded)
}

func dominantColors(img image.Image) []ColorInfo {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	totalPixels := float64(w * h)

	centerX := float64(w) / 2
	centerY := float64(h) / 4
	sampleRadius := math.Min(float64(w), float64(h)) / 2

	census := make(map[[3]int]int)
	for y := 0; y < h; y += sampleStep {
		for x := 0; x < w; x += sampleStep {
			r16, g16, b16, a16 := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			r, g, bl, a := int(r16>>8), int(g16>>8), int(b16>>8), int(a16>>8)

			// Skip transparent, near-white and near-black pixels; paper
			// and ink dominate every card and carry no brand signal.
			if a < 128 || r+g+bl < 100 || r+g+bl > 600 {
				continue
			}

			weight := 1
			dist := math.Hypot(float64(x)-centerX, float64(y)-centerY)
			if dist < sampleRadius {
				weight = 2
			}

			key := [3]int{quantize(r), quantize(g), quantize(bl)}
			census[key] += weight
		}
	}

	type entry struct {
		rgb   [3]int
		count int
	}
	entries := make([]entry, 0, len(census))
	for rgb, count := range census {
		entries = append(entries, entry{rgb, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].rgb[0] < entries[j].rgb[0]
	})
	if len(entries) > maxColors {
		entries = entries[:maxColors]
	}

	colors := make([]ColorInfo, 0, len(entries))
	for _, e := range entries {
		colors = append(colors, ColorInfo{
			Hex:       fmt.Sprintf("#%02x%02x%02x", e.rgb[0], e.rgb[1], e.rgb[2]),
			RGB:       fmt.Sprintf("rgb(%d, %d, %d)", e.rgb[0], e.rgb[1], e.rgb[2]),
			Frequency: float64(e.count) / totalPixels,
		})
	}
	return colors
}

func quantize(v int) int {
	q := int(math.Round(float64(v)/quantStep)) * quantStep
	if q > 255 {
		q = 255
	}
	return q
}
