package stringart

import (
	"errors"
	"image"
	"testing"
)

func TestNewIntensityField(t *testing.T) {
	f, err := NewIntensityField(3)
	if err != nil {
		t.Fatalf("NewIntensityField failed: %v", err)
	}
	if f.Length() != 7 {
		t.Errorf("Expected length 7, got %d", f.Length())
	}
	if f.Total() != 0 {
		t.Errorf("Expected empty field, total %d", f.Total())
	}

	if _, err := NewIntensityField(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for radius 0, got %v", err)
	}
}

func TestFieldFromGrayRejectsWrongSize(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 7, 6))
	if _, err := FieldFromGray(gray, 3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCircularMaskCoversAllQuadrants(t *testing.T) {
	f := uniformField(t, 3, 255)

	tests := []struct {
		x, y int
		want uint8
	}{
		{3, 3, 255}, // center
		{3, 0, 255}, // top of the circle
		{0, 3, 255}, // left of the circle
		{6, 3, 255}, // right of the circle
		{0, 0, 0},   // corners
		{6, 0, 0},
		{0, 6, 0},
		{6, 6, 0},
		{0, 1, 0}, // 9+4 > 9, upper left
		{6, 5, 0}, // lower right
		{1, 1, 255}, // 4+4 <= 9
	}

	for _, tt := range tests {
		if got := f.Value(tt.x, tt.y); got != tt.want {
			t.Errorf("Value(%d,%d): expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestScoreAndErase(t *testing.T) {
	f, _ := NewIntensityField(2)
	f.SetValue(1, 1, 10)
	f.SetValue(2, 2, 20)
	pts := []image.Point{{1, 1}, {2, 2}, {2, 2}, {3, 3}}

	// Repeated pixels count every time they are sampled.
	if got := f.Score(pts); got != 50 {
		t.Errorf("Expected score 50, got %d", got)
	}

	f.Erase(pts)
	if got := f.Score(pts); got != 0 {
		t.Errorf("Expected score 0 after erase, got %d", got)
	}
}

func TestEraseIsIdempotent(t *testing.T) {
	once := uniformField(t, 10, 200)
	twice := once.Clone()
	layout := mustLayout(t, 7, 10)
	pts := Rasterize(layout.Position(0), layout.Position(3))

	once.Erase(pts)
	twice.Erase(pts)
	twice.Erase(pts)

	diff(t, once.Pix, twice.Pix)
}

func TestCloneIsIndependent(t *testing.T) {
	f := uniformField(t, 4, 9)
	c := f.Clone()
	c.SetValue(4, 4, 0)

	if f.Value(4, 4) != 9 {
		t.Error("Modifying clone should not affect original")
	}
	if f.Total() != c.Total()+9 {
		t.Errorf("Expected totals to differ by 9: %d vs %d", f.Total(), c.Total())
	}
}

func TestTotal(t *testing.T) {
	f := uniformField(t, 1, 2)
	// radius 1: center plus four neighbours are inside the circle.
	if got := f.Total(); got != 10 {
		t.Errorf("Expected total 10, got %d", got)
	}
}
