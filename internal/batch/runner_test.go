package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PersonalWorkingSpace/redborder/internal/border"
)

// writeTestPNG encodes an image to a PNG file inside dir
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

// redTopRowImage creates a white image whose top row is pure opaque red
func redTopRowImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	for x := 0; x < width; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 0, 0, 255})
	}
	return img
}

func TestRun(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	writeTestPNG(t, inDir, "a.png", redTopRowImage(6, 4))
	writeTestPNG(t, inDir, "b.png", redTopRowImage(8, 8))

	var progress bytes.Buffer
	n, err := Run(Options{
		InputDir:  inDir,
		OutputDir: outDir,
		Threshold: border.DefaultThreshold,
		Progress:  &progress,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 2 {
		t.Errorf("processed count: got %d, want 2", n)
	}

	for _, name := range []string{"a.png", "b.png"} {
		outPath := filepath.Join(outDir, name)
		f, err := os.Open(outPath)
		if err != nil {
			t.Fatalf("missing output file %s: %v", outPath, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("failed to decode %s: %v", outPath, err)
		}

		bounds := img.Bounds()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, bounds.Min.Y).RGBA(); a != 0 {
				t.Errorf("%s: top row pixel %d not transparent", name, x)
			}
		}
		if r, g, b, a := img.At(bounds.Min.X, bounds.Min.Y+1).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
			t.Errorf("%s: interior pixel modified", name)
		}
	}

	out := progress.String()
	if !strings.Contains(out, "Process image:") || !strings.Contains(out, "Done. Save file to") {
		t.Errorf("progress output missing expected lines:\n%s", out)
	}
}

func TestRun_IgnoresNonPNGAndSubdirs(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeTestPNG(t, inDir, "keep.png", redTopRowImage(4, 4))
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write text file: %v", err)
	}
	subDir := filepath.Join(inDir, "nested")
	if err := os.Mkdir(subDir, 0o755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	writeTestPNG(t, subDir, "skipped.png", redTopRowImage(4, 4))

	n, err := Run(Options{InputDir: inDir, OutputDir: outDir, Threshold: 0.6, Progress: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 1 {
		t.Errorf("processed count: got %d, want 1", n)
	}

	if _, err := os.Stat(filepath.Join(outDir, "skipped.png")); !os.IsNotExist(err) {
		t.Error("nested PNG should not be processed")
	}
}

func TestRun_EmptyInputDir(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "created", "out")

	n, err := Run(Options{InputDir: inDir, OutputDir: outDir, Threshold: 0.6, Progress: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 0 {
		t.Errorf("processed count: got %d, want 0", n)
	}

	// Output directory is still created, matching a run with files.
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRun_UndecodableFileAborts(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(inDir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatalf("failed to write broken file: %v", err)
	}

	_, err := Run(Options{InputDir: inDir, OutputDir: outDir, Threshold: 0.6, Progress: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("Run should fail on an undecodable file")
	}
	if !strings.Contains(err.Error(), "broken.png") {
		t.Errorf("error should name the offending file, got: %v", err)
	}
}
