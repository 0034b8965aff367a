package imageutil

import "image/color"

// CreateGradientImage creates a horizontal gradient test image.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	img.Fill(c)
	return img
}

// CreateDiscImage creates a white image with a black disc of radius r
// centered at (cx, cy). Useful as a solver target with an obvious answer.
func CreateDiscImage(width, height, cx, cy, r int) *RGBAImage {
	img := CreateSolidImage(width, height, RGB{R: 255, G: 255, B: 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}

// CreateSplitImage creates an image whose left half is black and right
// half is white.
func CreateSplitImage(width, height int) *RGBAImage {
	img := CreateSolidImage(width, height, RGB{R: 255, G: 255, B: 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width/2; x++ {
			img.SetRGB(x, y, RGB{})
		}
	}
	return img
}
