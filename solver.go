package stringart

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"
)

// Chord is one committed stretch of thread between two pins, together
// with the pixels it covers and the intensity it removed from the field.
type Chord struct {
	From   int
	To     int
	Pixels []image.Point
	Score  uint32
}

// Progress is reported to the progress callback after every committed
// chord.
type Progress struct {
	Chords    int
	MaxChords int
	Last      Chord
}

// Stats summarises a finished solve.
type Stats struct {
	Iterations       int
	CandidatesScored int
	ScoreRemoved     uint64
	Elapsed          time.Duration
}

// Solver greedily winds a thread around the pins of a PinLayout so that
// it covers as much of an IntensityField as possible. The solver owns the
// field for the duration of Solve and erases every chord it commits.
type Solver struct {
	// Configuration options
	MaxChords int
	Workers   int
	StartPin  int

	field    *IntensityField
	layout   *PinLayout
	progress func(Progress)
	stats    Stats
}

// SolverOption is a functional option for configuring a Solver.
type SolverOption func(*Solver)

// NewSolver creates a Solver for field and layout.
// Default values: MaxChords=1000, Workers=runtime.NumCPU(), StartPin=0.
func NewSolver(field *IntensityField, layout *PinLayout, opts ...SolverOption) *Solver {
	s := &Solver{
		MaxChords: 1000,
		Workers:   runtime.NumCPU(),
		StartPin:  0,
		field:     field,
		layout:    layout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithMaxChords bounds the length of the path.
func WithMaxChords(n int) SolverOption {
	return func(s *Solver) {
		s.MaxChords = n
	}
}

// WithWorkers sets how many goroutines score candidate chords.
func WithWorkers(n int) SolverOption {
	return func(s *Solver) {
		s.Workers = n
	}
}

// WithStartPin sets the pin the thread starts from.
func WithStartPin(pin int) SolverOption {
	return func(s *Solver) {
		s.StartPin = pin
	}
}

// WithProgress registers a callback invoked after every committed chord.
func WithProgress(fn func(Progress)) SolverOption {
	return func(s *Solver) {
		s.progress = fn
	}
}

// Stats returns statistics for the most recent Solve.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve runs the greedy loop and returns the committed chords in order.
//
// Each iteration scores the chords from the current pin to every other
// pin, skipping the two most recently visited pins so the thread never
// doubles straight back. The chord with the strictly highest score wins;
// ties go to the pin with the smallest offset from the current pin. The
// loop ends after MaxChords chords, or as soon as no candidate scores
// above zero.
func (s *Solver) Solve() ([]Chord, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	s.stats = Stats{}
	defer func() {
		s.stats.Elapsed = time.Since(start)
	}()

	chords := make([]Chord, 0, min(s.MaxChords, 4096))
	prev := [2]int{s.StartPin, s.StartPin}

	for len(chords) < s.MaxChords {
		s.stats.Iterations++
		best := s.step(prev)
		if best.To == best.From {
			break
		}

		s.field.Erase(best.Pixels)
		s.stats.ScoreRemoved += uint64(best.Score)
		chords = append(chords, best)
		prev = [2]int{prev[1], best.To}

		if s.progress != nil {
			s.progress(Progress{
				Chords:    len(chords),
				MaxChords: s.MaxChords,
				Last:      best,
			})
		}
	}

	return chords, nil
}

func (s *Solver) validate() error {
	if s.field == nil {
		return fmt.Errorf("%w: nil intensity field", ErrInvalidInput)
	}
	if s.layout == nil {
		return fmt.Errorf("%w: nil pin layout", ErrInvalidInput)
	}
	if s.layout.Radius() != float64(s.field.Radius) {
		return fmt.Errorf("%w: pin radius %g does not match field radius %d",
			ErrInvalidInput, s.layout.Radius(), s.field.Radius)
	}
	if s.MaxChords < 0 {
		return fmt.Errorf("%w: max chords must not be negative, got %d",
			ErrInvalidInput, s.MaxChords)
	}
	if s.StartPin < 0 || s.StartPin >= s.layout.Len() {
		return fmt.Errorf("%w: start pin %d outside [0, %d)",
			ErrInvalidInput, s.StartPin, s.layout.Len())
	}
	return nil
}

// step picks the next chord from prev[1]. If nothing scores above zero
// the returned chord starts and ends at the current pin.
func (s *Solver) step(prev [2]int) Chord {
	current := prev[1]
	n := s.layout.Len()

	// Candidates in increasing offset from the current pin.
	candidates := make([]Chord, 0, n-1)
	for k := 1; k < n; k++ {
		pin := (current + k) % n
		if pin == prev[0] || pin == prev[1] {
			continue
		}
		candidates = append(candidates, Chord{From: current, To: pin})
	}

	s.score(candidates)
	s.stats.CandidatesScored += len(candidates)

	best := Chord{From: current, To: current}
	for _, c := range candidates {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}

// score rasterizes and scores every candidate in place. Candidates are
// split into contiguous strips, one per worker; each worker writes only
// to its own strip, so the result does not depend on scheduling.
func (s *Solver) score(candidates []Chord) {
	workers := min(max(s.Workers, 1), len(candidates))
	if workers <= 1 {
		s.scoreStrip(candidates)
		return
	}

	stripSize := (len(candidates) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(candidates); lo += stripSize {
		hi := min(lo+stripSize, len(candidates))
		wg.Add(1)
		go func(strip []Chord) {
			defer wg.Done()
			s.scoreStrip(strip)
		}(candidates[lo:hi])
	}
	wg.Wait()
}

func (s *Solver) scoreStrip(strip []Chord) {
	for i := range strip {
		c := &strip[i]
		c.Pixels = Rasterize(s.layout.Position(c.From), s.layout.Position(c.To))
		c.Score = s.field.Score(c.Pixels)
	}
}
