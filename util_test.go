package stringart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// uniformField returns a field of the given radius with every cell inside
// the circle set to v.
func uniformField(t *testing.T, radius int, v uint8) *IntensityField {
	t.Helper()
	f, err := NewIntensityField(radius)
	if err != nil {
		t.Fatalf("NewIntensityField(%d): %v", radius, err)
	}
	for i := range f.Pix {
		f.Pix[i] = v
	}
	f.ApplyCircularMask()
	return f
}

func mustLayout(t *testing.T, pins int, radius float64) *PinLayout {
	t.Helper()
	l, err := NewPinLayout(pins, radius)
	if err != nil {
		t.Fatalf("NewPinLayout(%d, %g): %v", pins, radius, err)
	}
	return l
}
