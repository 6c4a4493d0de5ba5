// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestForOCRUndecodableFallsBack(t *testing.T) {
	in := []byte("definitely not an image")

	out, err := ForOCR(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Error("undecodable input should pass through unchanged")
	}
}

func TestForOCRBinarizes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				img.SetRGBA(x, y, color.RGBA{R: 250, G: 250, B: 250, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 10, G: 10, B: 10, A: 255})
			}
		}
	}

	out, err := ForOCR(encodePNG(t, img))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, _, _, _ := decoded.At(x, y).RGBA()
			v := uint8(r >> 8)
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want binarized 0 or 255", x, y, v)
			}
		}
	}
}

func TestDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))

	out := downscale(img, 200)
	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 50 {
		t.Errorf("downscaled to %dx%d, want 200x50", b.Dx(), b.Dy())
	}

	// Images already within the cap are untouched.
	small := image.NewRGBA(image.Rect(0, 0, 100, 80))
	if got := downscale(small, 200); got != image.Image(small) {
		t.Error("small image should be returned as-is")
	}
}

func TestRotations(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	r90 := rotate90(img)
	if b := r90.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Errorf("rotate90 bounds = %v", b)
	}
	// Top-left travels to the top-right corner under a clockwise turn.
	if r, _, _, _ := r90.At(1, 0).RGBA(); r>>8 != 255 {
		t.Error("rotate90 misplaced the marker pixel")
	}

	r180 := rotate180(img)
	if r, _, _, _ := r180.At(2, 1).RGBA(); r>>8 != 255 {
		t.Error("rotate180 misplaced the marker pixel")
	}

	flipped := flipHorizontal(img)
	if r, _, _, _ := flipped.At(2, 0).RGBA(); r>>8 != 255 {
		t.Error("flipHorizontal misplaced the marker pixel")
	}
}

func TestApplyOrientationDefault(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	for _, o := range []int{0, 1, 9} {
		if got := applyOrientation(img, o); got != image.Image(img) {
			t.Errorf("orientation %d should be identity", o)
		}
	}
}

func TestOrientationOfMissingEXIF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	if got := orientationOf(encodePNG(t, img)); got != 1 {
		t.Errorf("orientationOf = %d, want 1 for EXIF-less input", got)
	}
}
