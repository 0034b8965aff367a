package stringart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/vec"
)

// PinLayout is the ring of pins on the loom: numPins points evenly spaced
// on a circle of the given radius centered at (radius, radius). Pin i sits
// at angle i*2π/numPins, measured from the positive x axis towards +y.
// A PinLayout is immutable and safe for concurrent use.
type PinLayout struct {
	radius float64
	// positions has one extra entry closing the ring: positions[n] == positions[0].
	positions []vec.Vec2
}

// NewPinLayout computes the pin positions.
func NewPinLayout(numPins int, radius float64) (*PinLayout, error) {
	if numPins < 3 {
		return nil, fmt.Errorf("%w: need at least 3 pins, got %d",
			ErrInvalidInput, numPins)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: radius must be positive, got %g",
			ErrInvalidInput, radius)
	}

	angles := floats.Span(make([]float64, numPins+1), 0, 2*math.Pi)
	positions := make([]vec.Vec2, numPins+1)
	for i, alpha := range angles[:numPins] {
		positions[i] = vec.Vec2{
			X: radius * (1 + math.Cos(alpha)),
			Y: radius * (1 + math.Sin(alpha)),
		}
	}
	positions[numPins] = positions[0]

	return &PinLayout{radius: radius, positions: positions}, nil
}

// Len returns the number of pins.
func (l *PinLayout) Len() int {
	return len(l.positions) - 1
}

// Radius returns the radius of the ring.
func (l *PinLayout) Radius() float64 {
	return l.radius
}

// Center returns the center of the ring.
func (l *PinLayout) Center() vec.Vec2 {
	return vec.Vec2{X: l.radius, Y: l.radius}
}

// Position returns the position of pin, taken modulo Len.
func (l *PinLayout) Position(pin int) vec.Vec2 {
	n := l.Len()
	return l.positions[((pin%n)+n)%n]
}

// Positions returns a copy of the pin positions, without the closing
// duplicate.
func (l *PinLayout) Positions() []vec.Vec2 {
	out := make([]vec.Vec2, l.Len())
	copy(out, l.positions)
	return out
}
