package stringart

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/vec"

	"github.com/wbrown/stringart/imageutil"
)

const (
	// Background is the paper color of rendered images.
	Background uint8 = 255
	// Thread is the color of drawn chords.
	Thread uint8 = 0
)

// RenderThreads draws chords black on a white square of side length.
// Pixels outside the square are ignored.
func RenderThreads(chords []Chord, length int) *imageutil.GrayImage {
	img := imageutil.NewGrayImage(length, length)
	img.Fill(Background)

	bounds := img.Bounds()
	for _, c := range chords {
		for _, p := range c.Pixels {
			if p.In(bounds) {
				img.Pix[p.Y*img.Stride+p.X] = Thread
			}
		}
	}
	return img
}

var (
	templateRing  = imageutil.RGB{R: 190, G: 190, B: 190}
	templatePin   = imageutil.RGB{R: 200, G: 30, B: 30}
	templatePaper = imageutil.RGB{R: 255, G: 255, B: 255}
)

// RenderTemplate draws a printable loom template: the pin ring, a dot at
// every pin and the pin number just outside it. The ring is drawn at the
// same scale as RenderThreads, inside a margin sized for the labels.
func RenderTemplate(layout *PinLayout, fontSize float64) (*imageutil.RGBAImage, error) {
	if fontSize <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive, got %g",
			ErrInvalidInput, fontSize)
	}

	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Room for the widest label on each side.
	widest := font.MeasureString(face, strconv.Itoa(layout.Len()-1)).Ceil()
	margin := widest + int(math.Ceil(fontSize))
	length := int(math.Floor(2*layout.Radius())) + 1
	size := length + 2*margin

	img := imageutil.NewRGBAImage(size, size)
	img.Fill(templatePaper)
	offset := vec.Vec2{X: float64(margin), Y: float64(margin)}

	drawRing(img, layout, offset)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	ascent := face.Metrics().Ascent.Ceil()
	center := layout.Center()
	for pin, pos := range layout.Positions() {
		p := pos.Add(offset)
		drawDot(img, int(math.Floor(p.X)), int(math.Floor(p.Y)), templatePin)

		// Label centre sits half a label further out than the pin.
		dir := pos.Sub(center)
		if l := dir.Length(); l > 0 {
			dir = dir.Mul(1 / l)
		}
		label := strconv.Itoa(pin)
		width := font.MeasureString(face, label).Ceil()
		at := p.Add(dir.Mul(float64(widest)/2 + fontSize/2))
		pt := freetype.Pt(int(at.X)-width/2, int(at.Y)+ascent/2)
		if _, err := ctx.DrawString(label, pt); err != nil {
			return nil, fmt.Errorf("failed to draw label %q: %w", label, err)
		}
	}

	return img, nil
}

// drawRing traces the pin circle one pixel wide.
func drawRing(img *imageutil.RGBAImage, layout *PinLayout, offset vec.Vec2) {
	for pin := 0; pin < layout.Len(); pin++ {
		a := layout.Position(pin).Add(offset)
		b := layout.Position(pin + 1).Add(offset)
		for _, p := range Rasterize(a, b) {
			img.SetRGBA(p.X, p.Y, templateRing.ToColor())
		}
	}
}

// drawDot paints a 3x3 square centered at (x, y).
func drawDot(img *imageutil.RGBAImage, x, y int, c imageutil.RGB) {
	col := c.ToColor()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			img.SetRGBA(x+dx, y+dy, col)
		}
	}
}
