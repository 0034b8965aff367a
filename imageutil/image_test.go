package imageutil

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestNewGrayImage(t *testing.T) {
	img := NewGrayImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestGrayImageInvert(t *testing.T) {
	img := NewGrayImage(2, 1)
	img.SetGrayValue(0, 0, 0)
	img.SetGrayValue(1, 0, 200)

	img.Invert()

	if got := img.GetGray(0, 0); got != 255 {
		t.Errorf("Expected 255, got %d", got)
	}
	if got := img.GetGray(1, 0); got != 55 {
		t.Errorf("Expected 55, got %d", got)
	}
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 42)

	clone := img.Clone()
	if clone.GetGray(5, 5) != 42 {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetGrayValue(5, 5, 7)
	if img.GetGray(5, 5) != 42 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestToGrayscale(t *testing.T) {
	img := NewRGBAImage(1, 1)
	img.SetRGB(0, 0, RGB{R: 255, G: 255, B: 255})

	gray := ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 255 {
		t.Errorf("White pixel should convert to 255, got %d", v)
	}

	img.SetRGB(0, 0, RGB{R: 0, G: 0, B: 0})
	gray = ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 0 {
		t.Errorf("Black pixel should convert to 0, got %d", v)
	}

	// Test red (0.299 * 255 = 76.245)
	img.SetRGB(0, 0, RGB{R: 255, G: 0, B: 0})
	gray = ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 76 {
		t.Errorf("Red pixel should convert to 76, got %d", v)
	}
}

func TestToGrayscaleKeepsGrayValues(t *testing.T) {
	src := image.NewGray(image.Rect(3, 4, 5, 6))
	src.SetGray(4, 5, color.Gray{Y: 77})

	gray := ToGrayscale(src)
	if gray.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Expected bounds moved to origin, got %v", gray.Bounds())
	}
	if v := gray.GetGray(1, 1); v != 77 {
		t.Errorf("Expected 77, got %d", v)
	}
}

func TestSquareBounds(t *testing.T) {
	tests := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"landscape", image.Rect(0, 0, 100, 50), image.Rect(25, 0, 75, 50)},
		{"portrait odd", image.Rect(0, 0, 50, 101), image.Rect(0, 25, 50, 75)},
		{"square", image.Rect(0, 0, 7, 7), image.Rect(0, 0, 7, 7)},
		{"offset origin", image.Rect(10, 10, 20, 14), image.Rect(13, 10, 17, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareBounds(tt.in); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// plainImage hides the SubImage method of the wrapped image.
type plainImage struct {
	image.Image
}

func TestCropSquare(t *testing.T) {
	img := CreateGradientImage(6, 4)

	sub := CropSquare(img.RGBA)
	if sub.Bounds() != image.Rect(1, 0, 5, 4) {
		t.Errorf("Expected sub-image bounds (1,0)-(5,4), got %v", sub.Bounds())
	}

	copied := CropSquare(plainImage{img.RGBA})
	if copied.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("Expected copied bounds (0,0)-(4,4), got %v", copied.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := img.RGBAAt(x+1, y)
			got := copied.At(x, y).(color.RGBA)
			if got != want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestResizeGrayNearest(t *testing.T) {
	src := NewGrayImage(2, 2)
	src.SetGrayValue(0, 0, 10)
	src.SetGrayValue(1, 0, 20)
	src.SetGrayValue(0, 1, 30)
	src.SetGrayValue(1, 1, 40)

	dst := ResizeGray(src, 4, 4, InterpolationNearest)
	if dst.Width() != 4 || dst.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", dst.Width(), dst.Height())
	}

	allowed := map[uint8]bool{10: true, 20: true, 30: true, 40: true}
	for _, v := range dst.Pix {
		if !allowed[v] {
			t.Errorf("Nearest neighbor should only copy source values, got %d", v)
		}
	}
	if dst.GetGray(0, 0) != 10 || dst.GetGray(3, 3) != 40 {
		t.Errorf("Corners should map to source corners, got %d and %d",
			dst.GetGray(0, 0), dst.GetGray(3, 3))
	}
}

func TestSharpenGrayKeepsFlatRegions(t *testing.T) {
	img := NewGrayImage(8, 8)
	img.Fill(100)

	sharpened := SharpenGray(img)
	for i, v := range sharpened.Pix {
		if v != 100 {
			t.Fatalf("Pixel %d: expected 100, got %d", i, v)
		}
	}
}

func TestSharpenGrayIncreasesContrast(t *testing.T) {
	img := NewGrayImage(3, 3)
	img.Fill(100)
	img.SetGrayValue(1, 1, 150)

	sharpened := SharpenGray(img)
	// 3*150 - 4*0.5*100 = 250
	if v := sharpened.GetGray(1, 1); v != 250 {
		t.Errorf("Expected 250, got %d", v)
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()

	img := CreateGradientImage(64, 64)
	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SaveImage(img.RGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	want, got := ToGrayscale(img), ToGrayscale(loaded)
	for i := range want.Pix {
		if want.Pix[i] != got.Pix[i] {
			t.Fatalf("Pixel %d differs after round trip: %d != %d",
				i, want.Pix[i], got.Pix[i])
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
