package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PersonalWorkingSpace/redborder/internal/batch"
	"github.com/PersonalWorkingSpace/redborder/internal/border"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	inDir := flag.String("in", "", "input directory containing PNG images (required)")
	outDir := flag.String("out", "", "output directory for processed images (required)")
	frac := flag.Float64("frac", border.DefaultThreshold, "red fraction threshold per edge line")
	version := flag.Bool("version", false, "print version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: redborder --in <input dir> --out <output dir> [--frac <float>]\n\n")
		fmt.Fprintf(os.Stderr, "Removes a one-pixel red border artifact from the edges of PNG images.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("redborder %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if *inDir == "" || *outDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	n, err := batch.Run(batch.Options{
		InputDir:  *inDir,
		OutputDir: *outDir,
		Threshold: *frac,
	})
	if err != nil {
		log.Fatalf("Batch run failed after %d image(s): %v", n, err)
	}
}
