package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/PersonalWorkingSpace/redborder/internal/border"
)

// Options configures a batch run.
type Options struct {
	// InputDir is scanned (non-recursively) for *.png files.
	InputDir string

	// OutputDir receives one output file per input, same base name.
	// Created if it does not exist.
	OutputDir string

	// Threshold is the red fraction required per edge line.
	Threshold float64

	// Progress receives a line before and after each file. Defaults to
	// os.Stdout when nil.
	Progress io.Writer
}

// Run strips the red border from every PNG directly under opts.InputDir
// and writes the results under opts.OutputDir.
//
// Returns the number of images processed. An empty or missing input
// directory is not an error; the run simply processes zero files. Any
// read, decode, or write failure stops the run immediately and is
// returned wrapped with the offending path.
func Run(opts Options) (int, error) {
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}

	files, err := filepath.Glob(filepath.Join(opts.InputDir, "*.png"))
	if err != nil {
		return 0, fmt.Errorf("failed to scan input directory: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, path := range files {
		if err := processFile(path, opts); err != nil {
			return i, err
		}
	}
	return len(files), nil
}

// processFile decodes one image, strips its border, and writes the
// result under the output directory.
func processFile(path string, opts Options) error {
	fmt.Fprintf(opts.Progress, "Process image: %s\n", path)

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	out, err := border.RemoveBorderFromImage(img, opts.Threshold)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", path, err)
	}

	outPath := filepath.Join(opts.OutputDir, filepath.Base(path))
	if err := imaging.Save(out, outPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outPath, err)
	}

	fmt.Fprintf(opts.Progress, "Done. Save file to %s\n", outPath)
	return nil
}
