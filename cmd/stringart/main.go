package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/stringart"
	"github.com/wbrown/stringart/cvprep"
	"github.com/wbrown/stringart/imageutil"
)

type options struct {
	input    string
	output   string
	pins     int
	threads  int
	radius   int
	workers  int
	csv      bool
	noImg    bool
	coords   bool
	header   bool
	sharpen  bool
	opencv   bool
	template float64
	verbose  bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.input, "input", "",
		"Path to the target image (required)")
	flag.StringVar(&opts.output, "output", "",
		"Directory (or any file inside it) for the outputs. "+
			"Defaults to the directory of the input image")
	flag.IntVar(&opts.pins, "pins", 500,
		"Number of pins on the loom")
	flag.IntVar(&opts.threads, "threads", 1000,
		"Maximum number of threads (chords) used")
	flag.IntVar(&opts.radius, "radius", 0,
		"Radius of the output image in pixels, at most "+
			"min(width, height) of the input (0 = that maximum)")
	flag.IntVar(&opts.workers, "workers", 0,
		"Goroutines scoring candidate chords (0 = number of CPUs)")
	flag.BoolVar(&opts.csv, "csv", false,
		"Save thread information to a CSV")
	flag.BoolVar(&opts.noImg, "noimg", false,
		"Skip image generation (requires -csv)")
	flag.BoolVar(&opts.coords, "coords", false,
		"Write the pixel coordinates of each thread's ends to the CSV "+
			"instead of pin numbers (requires -csv)")
	flag.BoolVar(&opts.header, "header", false,
		"Include a CSV header line: x1,y1,x2,y2 with -coords, otherwise "+
			"pins (requires -csv)")
	flag.BoolVar(&opts.sharpen, "sharpen", false,
		"Sharpen the image before solving")
	flag.BoolVar(&opts.opencv, "opencv", false,
		"Load and preprocess the image with OpenCV")
	flag.Float64Var(&opts.template, "template", 0,
		"Also write a numbered pin template using this font size (0 = off)")
	flag.BoolVar(&opts.verbose, "v", false,
		"Print progress while solving")
	flag.Parse()

	if opts.input == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !opts.csv && (opts.noImg || opts.coords || opts.header) {
		fmt.Println("-noimg, -coords and -header require -csv")
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	beginInit := time.Now()

	field, err := loadField(opts)
	if err != nil {
		return err
	}
	layout, err := stringart.NewPinLayout(opts.pins, float64(field.Radius))
	if err != nil {
		return err
	}
	fmt.Printf("radius: %d, pins: %d, max threads: %d\n",
		field.Radius, layout.Len(), opts.threads)
	fmt.Printf("Initialization time: %v\n", time.Since(beginInit))

	solverOpts := []stringart.SolverOption{
		stringart.WithMaxChords(opts.threads),
	}
	if opts.workers > 0 {
		solverOpts = append(solverOpts, stringart.WithWorkers(opts.workers))
	}
	if opts.verbose {
		solverOpts = append(solverOpts, stringart.WithProgress(reportProgress))
	}

	solver := stringart.NewSolver(field, layout, solverOpts...)
	chords, err := solver.Solve()
	if err != nil {
		return err
	}
	stats := solver.Stats()
	fmt.Printf("Computation time: %v\n", stats.Elapsed)
	fmt.Printf("Threads: %d, candidates scored: %d, intensity covered: %d\n",
		len(chords), stats.CandidatesScored, stats.ScoreRemoved)

	prefix := outputPrefix(opts.input, opts.pins, opts.threads)
	dir := outputDir(opts.input, opts.output)

	if !opts.noImg {
		path := filepath.Join(dir, prefix+"_threaded.png")
		img := stringart.RenderThreads(chords, field.Length())
		if err := imageutil.SaveImage(img.Gray, path); err != nil {
			return fmt.Errorf("failed to save threaded image: %w", err)
		}
		fmt.Printf("Image written to %s\n", path)
	}

	if opts.csv {
		path := filepath.Join(dir, prefix+"_threads.csv")
		if err := writeCSV(path, chords, stringart.CSVOptions{
			Coords: opts.coords,
			Header: opts.header,
		}); err != nil {
			return err
		}
		fmt.Printf("CSV written to %s\n", path)
	}

	if opts.template > 0 {
		path := filepath.Join(dir, prefix+"_template.png")
		img, err := stringart.RenderTemplate(layout, opts.template)
		if err != nil {
			return err
		}
		if err := imageutil.SaveImage(img.RGBA, path); err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}
		fmt.Printf("Template written to %s\n", path)
	}

	return nil
}

func loadField(opts options) (*stringart.IntensityField, error) {
	if opts.opencv {
		if opts.sharpen {
			fmt.Println("Note: -sharpen is ignored with -opencv")
		}
		return cvprep.PreprocessFile(opts.input, opts.radius)
	}

	img, err := imageutil.LoadImage(opts.input)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	radius := stringart.ClampRadius(opts.radius, bounds.Dx(), bounds.Dy())
	return stringart.Preprocess(img, radius, stringart.WithSharpen(opts.sharpen))
}

func reportProgress(p stringart.Progress) {
	if p.Chords%100 == 0 || p.Chords == p.MaxChords {
		fmt.Printf("thread %d/%d: pin %d -> %d (score %d)\n",
			p.Chords, p.MaxChords, p.Last.From, p.Last.To, p.Last.Score)
	}
}

// outputPrefix names outputs after the input: <stem>_<pins>_<threads>.
func outputPrefix(input string, pins, threads int) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%d_%d", stem, pins, threads)
}

// outputDir returns output itself when it names a directory, otherwise
// the directory containing output (or input when output is empty).
func outputDir(input, output string) string {
	if output == "" {
		return filepath.Dir(input)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return output
	}
	return filepath.Dir(output)
}

func writeCSV(path string, chords []stringart.Chord, opts stringart.CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV: %w", err)
	}
	if err := stringart.WriteCSV(f, chords, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return f.Close()
}
