package imageutil

import (
	"image"
	"image/color"
)

// ToGrayscale converts any image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This matches the BT.601 standard used by OpenCV's COLOR_BGR2GRAY.
// The result always has its origin at (0, 0).
func ToGrayscale(img image.Image) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Pix[(y-bounds.Min.Y)*gray.Stride+(x-bounds.Min.X)] =
				luminance(img.At(x, y))
		}
	}

	return gray
}

// luminance returns the 8-bit BT.601 luma of c. Gray inputs pass through
// unchanged.
func luminance(c color.Color) uint8 {
	if g, ok := c.(color.Gray); ok {
		return g.Y
	}
	r16, g16, b16, _ := c.RGBA()
	r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)
	// Integer math, scaled by 1000
	lum := (299*r + 587*g + 114*b + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}
