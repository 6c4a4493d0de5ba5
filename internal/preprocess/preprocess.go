// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocess prepares card photos for recognition. The engine sees
// an upright, downscaled, binarized grayscale image instead of the raw
// phone photo; that alone recovers most of the text the raw photo loses.
package preprocess

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
)

const (
	// maxDimension caps the longer image side before recognition.
	maxDimension = 2000
	// gammaCorrection lifts midtones before contrast shaping.
	gammaCorrection = 1.2
	// contrastSlope steers the sigmoid contrast curve around the midpoint.
	contrastSlope = 1.8
	// binarizeThreshold splits text pixels from background, 0-255.
	binarizeThreshold = 140
)

// ForOCR runs the full enhancement chain over an encoded PNG or JPEG and
// returns a PNG. Any failure returns the input bytes unchanged; a raw photo
// still scans, just worse, and preprocessing must never block a scan.
func ForOCR(img []byte) ([]byte, error) {
	decoded, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return img, nil
	}

	decoded = applyOrientation(decoded, orientationOf(img))
	decoded = downscale(decoded, maxDimension)
	enhanced := binarize(decoded)

	var buf bytes.Buffer
	if err := png.Encode(&buf, enhanced); err != nil {
		return img, nil
	}
	return buf.Bytes(), nil
}

// orientationOf reads the EXIF orientation tag, 1 when absent or unreadable.
func orientationOf(img []byte) int {
	x, err := exif.Decode(bytes.NewReader(img))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// applyOrientation maps the eight EXIF orientations back to upright.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return flipHorizontal(img)
	case 3:
		return rotate180(img)
	case 4:
		return flipHorizontal(rotate180(img))
	case 5:
		return flipHorizontal(rotate90(img))
	case 6:
		return rotate90(img)
	case 7:
		return flipHorizontal(rotate270(img))
	case 8:
		return rotate270(img)
	default:
		return img
	}
}

func rotate90(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, img.At(x, y))
		}
	}
	return out
}

func rotate180(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.X-1-x, b.Max.Y-1-y, img.At(x, y))
		}
	}
	return out
}

func rotate270(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(y-b.Min.Y, b.Max.X-1-x, img.At(x, y))
		}
	}
	return out
}

func flipHorizontal(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.X-1-x, y-b.Min.Y, img.At(x, y))
		}
	}
	return out
}

// downscale resamples the image so its longer side fits max pixels.
// Upscaling is never done; small crisp images beat big blurry ones.
func downscale(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= max {
		return img
	}
	scale := float64(max) / float64(longest)
	out := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), img, b, draw.Over, nil)
	return out
}

// binarize converts to grayscale with the standard luma weights, applies
// gamma and sigmoid contrast, then thresholds to near-black/near-white.
func binarize(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bl>>8)

			normalized := math.Pow(luma/255, 1/gammaCorrection)
			contrasted := 1 / (1 + math.Exp(-contrastSlope*8*(normalized-0.5)))

			v := uint8(0)
			if contrasted*255 >= binarizeThreshold {
				v = 255
			}
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: v})
		}
	}
	return out
}
