package stringart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVOptions selects the record layout of WriteCSV.
type CSVOptions struct {
	// Coords writes x1,y1,x2,y2 pixel coordinates of the chord ends
	// instead of the destination pin number.
	Coords bool
	// Header writes a header line first: "x1,y1,x2,y2" or "pins".
	Header bool
}

// WriteCSV writes one record per chord. In pin mode each record is the
// pin the thread is taken to next; the path always starts at the solver's
// start pin.
func WriteCSV(w io.Writer, chords []Chord, opts CSVOptions) error {
	cw := csv.NewWriter(w)

	if opts.Header {
		header := []string{"pins"}
		if opts.Coords {
			header = []string{"x1", "y1", "x2", "y2"}
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, c := range chords {
		var record []string
		if opts.Coords {
			if len(c.Pixels) == 0 {
				return fmt.Errorf("chord %d (%d->%d) has no pixels", i, c.From, c.To)
			}
			first, last := c.Pixels[0], c.Pixels[len(c.Pixels)-1]
			record = []string{
				strconv.Itoa(first.X), strconv.Itoa(first.Y),
				strconv.Itoa(last.X), strconv.Itoa(last.Y),
			}
		} else {
			record = []string{strconv.Itoa(c.To)}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write chord %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
