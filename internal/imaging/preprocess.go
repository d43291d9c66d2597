package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// PreprocessOptions controls the reduction of a fragment photo to a binary
// paper/background image.
type PreprocessOptions struct {
	// Width and Height of the processing resolution.
	Width, Height int

	// BlurSize is the side of the box-blur window in pixels. The blur is
	// realized as the smallest centered box kernel covering the window.
	BlurSize int

	// Threshold is the luminance cutoff for binarization: pixels at or
	// above it become white (paper), the rest black.
	Threshold uint8
}

// Preprocess reduces a fragment photo to a strictly two-valued image at
// the processing resolution.
//
// The sequence is fixed: Catmull-Rom (cubic) resize to Width x Height,
// grayscale conversion, box blur, binarization. The cubic resampler is
// deliberate: it smooths small tear serrations into the larger peaks and
// valleys that actually distinguish fragments, so the signature captures
// curvature rather than fiber noise.
func Preprocess(img image.Image, opts PreprocessOptions) *image.Gray {
	resized := imaging.Resize(img, opts.Width, opts.Height, imaging.CatmullRom)
	gray := imaging.Grayscale(resized)

	var blurred image.Image = gray
	if opts.BlurSize > 1 {
		blurred = blur.Box(gray, float64(opts.BlurSize)/2)
	}

	return segment.Threshold(blurred, opts.Threshold)
}
