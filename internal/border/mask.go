package border

import (
	"errors"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultThreshold is the default red fraction required for an edge line
// to be treated as border and cleared.
const DefaultThreshold = 0.6

var (
	// ErrBitDepth is returned for images with more than 8 bits per channel.
	ErrBitDepth = errors.New("border: image must be 8 bits per channel")

	// ErrFormat is returned for images that are not 4-channel
	// non-premultiplied RGBA.
	ErrFormat = errors.New("border: image must be 4-channel RGBA (NRGBA)")
)

// pureRed is the border color in normalized channel space: the mask
// matches exactly R=1, G=0, B=0 after dividing each channel by 255.
var pureRed = colorful.Color{R: 1, G: 0, B: 0}

// RedMask reports which pixels of an image are pure opaque red.
//
// The returned mask is indexed [y][x] over the image bounds and is true
// exactly where the pixel equals R=255, G=0, B=0, A=255. There is no
// tolerance: a pixel one unit off in any channel is not matched.
//
// Returns ErrBitDepth or ErrFormat if the image is not 8-bit NRGBA.
// The input image is never modified.
func RedMask(img image.Image) ([][]bool, error) {
	rgba, err := validateNRGBA(img)
	if err != nil {
		return nil, err
	}
	return redMask(rgba), nil
}

// validateNRGBA checks the two input preconditions before any scanning:
// 8-bit channels and 4-channel non-premultiplied RGBA storage.
func validateNRGBA(img image.Image) (*image.NRGBA, error) {
	switch v := img.(type) {
	case *image.NRGBA:
		return v, nil
	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		return nil, ErrBitDepth
	default:
		return nil, ErrFormat
	}
}

// redMask builds the boolean red mask for a validated image.
func redMask(img *image.NRGBA) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			c := img.NRGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
			if c.A != 0xff {
				continue
			}
			normalized := colorful.Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			}
			mask[y][x] = normalized == pureRed
		}
	}
	return mask
}
