package stringart

import (
	"fmt"
	"image"

	"github.com/wbrown/stringart/imageutil"
)

// PreprocessOption configures Preprocess.
type PreprocessOption func(*preprocessConfig)

type preprocessConfig struct {
	sharpen bool
}

// WithSharpen applies a mild 3x3 sharpening pass after the grayscale
// conversion. Off by default.
func WithSharpen(sharpen bool) PreprocessOption {
	return func(c *preprocessConfig) {
		c.sharpen = sharpen
	}
}

// ClampRadius picks the field radius for a width x height source. A
// requested radius of zero or less selects min(width, height); anything
// larger than that is clamped to it.
func ClampRadius(requested, width, height int) int {
	minEdge := min(width, height)
	if requested <= 0 || requested > minEdge {
		return minEdge
	}
	return requested
}

// Preprocess turns img into an IntensityField of the given radius:
//
//  1. center-crop to a square
//  2. convert to grayscale (BT.601)
//  3. optionally sharpen
//  4. nearest-neighbor resize to 2*radius+1 on each side
//  5. invert, so dark source pixels carry the most intensity
//  6. zero everything outside the inscribed circle
func Preprocess(img image.Image, radius int, opts ...PreprocessOption) (*IntensityField, error) {
	var cfg preprocessConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has zero area (%dx%d)",
			ErrInvalidInput, bounds.Dx(), bounds.Dy())
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %d",
			ErrInvalidInput, radius)
	}

	length := 2*radius + 1
	gray := imageutil.ToGrayscale(imageutil.CropSquare(img))
	if cfg.sharpen {
		gray = imageutil.SharpenGray(gray)
	}
	resized := imageutil.ResizeGray(gray, length, length, imageutil.InterpolationNearest)
	resized.Invert()

	return FieldFromGray(resized.Gray, radius)
}
