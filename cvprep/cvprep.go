// Package cvprep prepares intensity fields with OpenCV. It mirrors
// stringart.Preprocess step for step, for callers that already hold a
// gocv.Mat or want OpenCV's decoders. Building it requires OpenCV.
package cvprep

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/wbrown/stringart"
)

// Load reads an image file into a BGR Mat. The caller must Close it.
func Load(path string) (gocv.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to read image: %s", path)
	}
	return mat, nil
}

// Preprocess converts a grayscale, BGR or BGRA Mat into an intensity
// field of the given radius: center crop, grayscale, nearest-neighbor
// resize, invert, circular mask.
func Preprocess(mat gocv.Mat, radius int) (*stringart.IntensityField, error) {
	if mat.Empty() || mat.Cols() == 0 || mat.Rows() == 0 {
		return nil, fmt.Errorf("%w: image has zero area (%dx%d)",
			stringart.ErrInvalidInput, mat.Cols(), mat.Rows())
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %d",
			stringart.ErrInvalidInput, radius)
	}
	length := 2*radius + 1

	square := mat.Region(squareRect(mat.Cols(), mat.Rows()))
	defer square.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	switch mat.Channels() {
	case 1:
		square.CopyTo(&gray)
	case 3:
		gocv.CvtColor(square, &gray, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(square, &gray, gocv.ColorBGRAToGray)
	default:
		return nil, fmt.Errorf("%w: unsupported channel count %d",
			stringart.ErrInvalidInput, mat.Channels())
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(gray, &resized, image.Pt(length, length), 0, 0,
		gocv.InterpolationNearestNeighbor)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(resized, &inverted)

	return stringart.FieldFromGray(matToGray(inverted), radius)
}

// PreprocessFile loads path and preprocesses it. A radius of zero or less
// selects the largest radius the image allows.
func PreprocessFile(path string, radius int) (*stringart.IntensityField, error) {
	mat, err := Load(path)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return Preprocess(mat, stringart.ClampRadius(radius, mat.Cols(), mat.Rows()))
}

// squareRect returns the centered square of a width x height image.
func squareRect(width, height int) image.Rectangle {
	side := min(width, height)
	left := (width - side) / 2
	top := (height - side) / 2
	return image.Rect(left, top, left+side, top+side)
}

// matToGray copies a single-channel 8-bit Mat into an image.Gray.
func matToGray(mat gocv.Mat) *image.Gray {
	height, width := mat.Rows(), mat.Cols()
	gray := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Pix[y*gray.Stride+x] = mat.GetUCharAt(y, x)
		}
	}
	return gray
}
