package border

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// lineCounts holds the per-line aggregates the edge scans evaluate:
// how many pixels on each row and column are red, and how many are
// non-transparent (alpha > 0).
//
// Red counts are kept live: clearPixel decrements them as pixels are
// zeroed, so later passes see the cumulative effect of earlier ones.
// The non-transparent counts are computed once and never updated; the
// column passes deliberately divide by pre-row-pass denominators.
type lineCounts struct {
	redRow   []int
	redCol   []int
	solidRow []int
	solidCol []int
}

// RemoveBorder erases a one-line red border from each edge of an image.
//
// The image is mutated in place and the same buffer is returned. For
// each edge, the first line containing any non-transparent pixel is
// evaluated once: if red pixels make up at least threshold of its
// non-transparent pixels, every red pixel on the line has all four
// channels set to zero. Lines further in are never examined, so a
// border thicker than one pixel per side is only partially removed.
//
// threshold is not range-checked: values <= 0 make every non-empty edge
// line qualify, values > 1 make none qualify.
//
// Returns ErrBitDepth or ErrFormat (and leaves the image untouched) if
// the input is not 8-bit NRGBA.
func RemoveBorder(img image.Image, threshold float64) (*image.NRGBA, error) {
	rgba, err := validateNRGBA(img)
	if err != nil {
		return nil, err
	}

	bounds := rgba.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := redMask(rgba)
	counts := countLines(rgba, mask)

	scanRows(rgba, mask, counts, 0, 1, threshold)         // top -> bottom
	scanRows(rgba, mask, counts, height-1, -1, threshold) // bottom -> top
	scanCols(rgba, mask, counts, 0, 1, threshold)         // left -> right
	scanCols(rgba, mask, counts, width-1, -1, threshold)  // right -> left

	return rgba, nil
}

// RemoveBorderFromImage strips the red border from an image of any color
// model.
//
// The image is first converted to 8-bit NRGBA using the codec's standard
// conversion (inputs without an alpha channel gain a fully opaque one),
// so the input image itself is never modified. The returned image is the
// converted copy with the border removed.
func RemoveBorderFromImage(img image.Image, threshold float64) (*image.NRGBA, error) {
	rgba := imaging.Clone(img)
	return RemoveBorder(rgba, threshold)
}

// countLines computes the per-row and per-column red and non-transparent
// pixel counts in one pass, before any mutation.
func countLines(img *image.NRGBA, mask [][]bool) *lineCounts {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	counts := &lineCounts{
		redRow:   make([]int, height),
		redCol:   make([]int, width),
		solidRow: make([]int, height),
		solidCol: make([]int, width),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] {
				counts.redRow[y]++
				counts.redCol[x]++
			}
			if img.NRGBAAt(x+bounds.Min.X, y+bounds.Min.Y).A > 0 {
				counts.solidRow[y]++
				counts.solidCol[x]++
			}
		}
	}
	return counts
}

// scanRows walks rows from y0 in the given direction (step +1 or -1),
// skipping fully transparent rows, and evaluates the first row with any
// non-transparent pixel. A qualifying row has its red pixels cleared.
// The scan stops after that first row either way; if every row is
// transparent it reaches the far boundary without acting.
func scanRows(img *image.NRGBA, mask [][]bool, counts *lineCounts, y0, step int, threshold float64) {
	height := len(counts.solidRow)
	width := len(counts.solidCol)

	for y := y0; y >= 0 && y < height; y += step {
		if counts.solidRow[y] == 0 {
			continue
		}
		frac := float64(counts.redRow[y]) / float64(counts.solidRow[y])
		if frac >= threshold {
			for x := 0; x < width; x++ {
				if mask[y][x] {
					clearPixel(img, mask, counts, x, y)
				}
			}
		}
		return
	}
}

// scanCols is the column counterpart of scanRows, walking from x0
// inward. The red numerators reflect pixels the row passes cleared; the
// non-transparent denominators do not (see lineCounts).
func scanCols(img *image.NRGBA, mask [][]bool, counts *lineCounts, x0, step int, threshold float64) {
	height := len(counts.solidRow)
	width := len(counts.solidCol)

	for x := x0; x >= 0 && x < width; x += step {
		if counts.solidCol[x] == 0 {
			continue
		}
		frac := float64(counts.redCol[x]) / float64(counts.solidCol[x])
		if frac >= threshold {
			for y := 0; y < height; y++ {
				if mask[y][x] {
					clearPixel(img, mask, counts, x, y)
				}
			}
		}
		return
	}
}

// clearPixel zeroes all four channels of a red pixel and retires it from
// the mask and the live red counts.
func clearPixel(img *image.NRGBA, mask [][]bool, counts *lineCounts, x, y int) {
	bounds := img.Bounds()
	img.SetNRGBA(x+bounds.Min.X, y+bounds.Min.Y, color.NRGBA{})
	mask[y][x] = false
	counts.redRow[y]--
	counts.redCol[x]--
}
