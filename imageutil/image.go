// Package imageutil provides the pure Go image handling used to turn a
// decoded picture into a square grayscale working image and to write the
// rendered results back out.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with the standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Fill paints every pixel with c.
func (img *RGBAImage) Fill(c RGB) {
	draw.Draw(img.RGBA, img.Bounds(), &image.Uniform{C: c.ToColor()},
		image.Point{}, draw.Src)
}

// GrayImage wraps image.Gray for single-channel working images.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the grayscale value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Fill sets every pixel to v.
func (img *GrayImage) Fill(v uint8) {
	for i := range img.Pix {
		img.Pix[i] = v
	}
}

// Invert maps every value v to 255-v in place.
func (img *GrayImage) Invert() {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	for y := 0; y < clone.Height(); y++ {
		row := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(clone.Pix[y*clone.Stride:], img.Pix[row:row+clone.Width()])
	}
	return clone
}
