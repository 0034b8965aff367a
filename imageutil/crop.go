package imageutil

import (
	"image"
	"image/draw"
)

// SquareBounds returns the largest square centered in r. The offsets
// along the longer side are (longer-shorter)/2, truncated.
func SquareBounds(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	side := min(w, h)
	left := r.Min.X + (w-side)/2
	top := r.Min.Y + (h-side)/2
	return image.Rect(left, top, left+side, top+side)
}

// CropSquare returns the centered square of img. Images that support
// SubImage share their pixels with the result; anything else is copied.
func CropSquare(img image.Image) image.Image {
	square := SquareBounds(img.Bounds())

	if sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(square)
	}

	dst := image.NewRGBA(image.Rect(0, 0, square.Dx(), square.Dy()))
	draw.Draw(dst, dst.Bounds(), img, square.Min, draw.Src)
	return dst
}
