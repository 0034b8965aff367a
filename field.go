// Package stringart approximates an image with a single thread wound
// around pins on a circular loom. The picture is turned into a circular
// intensity field, and a greedy solver repeatedly stretches the thread
// across the chord that covers the most remaining darkness.
package stringart

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidInput is returned for inputs the solver cannot work with:
// empty images, non-positive radii, fewer than three pins.
var ErrInvalidInput = errors.New("invalid input")

// IntensityField is the solver's working image: a square grayscale grid
// of side 2*Radius+1 where each value is the darkness still left to be
// covered by thread. Values only ever decrease during a solve, and every
// cell outside the inscribed circle is zero.
type IntensityField struct {
	*image.Gray
	Radius int
}

// NewIntensityField returns an all-zero field for the given radius.
func NewIntensityField(radius int) (*IntensityField, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %d",
			ErrInvalidInput, radius)
	}
	length := 2*radius + 1
	return &IntensityField{
		Gray:   image.NewGray(image.Rect(0, 0, length, length)),
		Radius: radius,
	}, nil
}

// FieldFromGray adopts gray as the backing store of a field. gray must be
// square with side 2*radius+1. The circular mask is applied in place.
func FieldFromGray(gray *image.Gray, radius int) (*IntensityField, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %d",
			ErrInvalidInput, radius)
	}
	length := 2*radius + 1
	if gray.Rect.Dx() != length || gray.Rect.Dy() != length {
		return nil, fmt.Errorf("%w: field must be %dx%d, got %dx%d",
			ErrInvalidInput, length, length, gray.Rect.Dx(), gray.Rect.Dy())
	}
	f := &IntensityField{Gray: gray, Radius: radius}
	f.ApplyCircularMask()
	return f, nil
}

// Length returns the side of the field, 2*Radius+1.
func (f *IntensityField) Length() int {
	return 2*f.Radius + 1
}

// Value returns the intensity at (x, y) relative to the field origin.
func (f *IntensityField) Value(x, y int) uint8 {
	return f.Pix[f.offset(x, y)]
}

// SetValue sets the intensity at (x, y) relative to the field origin.
func (f *IntensityField) SetValue(x, y int, v uint8) {
	f.Pix[f.offset(x, y)] = v
}

func (f *IntensityField) offset(x, y int) int {
	return y*f.Stride + x
}

// InMask reports whether (x, y) lies inside the inscribed circle.
func (f *IntensityField) InMask(x, y int) bool {
	dx, dy := x-f.Radius, y-f.Radius
	return dx*dx+dy*dy <= f.Radius*f.Radius
}

// ApplyCircularMask zeroes every cell outside the inscribed circle.
func (f *IntensityField) ApplyCircularMask() {
	length := f.Length()
	for y := 0; y < length; y++ {
		for x := 0; x < length; x++ {
			if !f.InMask(x, y) {
				f.Pix[f.offset(x, y)] = 0
			}
		}
	}
}

// Score sums the field values under pts. The sum saturates at
// math.MaxUint32 instead of wrapping.
func (f *IntensityField) Score(pts []image.Point) uint32 {
	var sum uint32
	for _, p := range pts {
		v := uint32(f.Pix[f.offset(p.X, p.Y)])
		if sum > math.MaxUint32-v {
			return math.MaxUint32
		}
		sum += v
	}
	return sum
}

// Erase zeroes the field under pts. Erasing the same points twice has no
// further effect.
func (f *IntensityField) Erase(pts []image.Point) {
	for _, p := range pts {
		f.Pix[f.offset(p.X, p.Y)] = 0
	}
}

// Total returns the sum of all values in the field.
func (f *IntensityField) Total() uint64 {
	var sum uint64
	length := f.Length()
	for y := 0; y < length; y++ {
		for _, v := range f.Pix[f.offset(0, y) : f.offset(0, y)+length] {
			sum += uint64(v)
		}
	}
	return sum
}

// Clone returns a deep copy of the field.
func (f *IntensityField) Clone() *IntensityField {
	gray := image.NewGray(image.Rect(0, 0, f.Length(), f.Length()))
	for y := 0; y < f.Length(); y++ {
		copy(gray.Pix[y*gray.Stride:], f.Pix[f.offset(0, y):f.offset(0, y)+f.Length()])
	}
	return &IntensityField{Gray: gray, Radius: f.Radius}
}
