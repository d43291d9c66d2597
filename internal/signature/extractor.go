package signature

import (
	"image"

	"tearmatch/internal/imaging"
)

// Params configures an Extractor. All values are fixed for the lifetime of
// the extractor; signatures are only comparable when extracted with the
// same Width.
type Params struct {
	// Width and Height of the processing resolution every fragment photo
	// is resampled to before analysis.
	Width, Height int

	// BlurSize is the side of the box-blur window applied before
	// binarization, in pixels.
	BlurSize int

	// Threshold is the luminance cutoff (0-255) separating paper from
	// background during binarization.
	Threshold uint8

	// CannyLow and CannyHigh are the hysteresis thresholds (0-255) of the
	// edge detector. The defaults keep every gradient the binary image
	// produces, which is what a hard black/white boundary wants.
	CannyLow, CannyHigh int
}

// DefaultParams returns the processing parameters the system was tuned
// with: 512x512 resolution, 2px blur, binarization at 150, hysteresis
// 10/255.
func DefaultParams() Params {
	return Params{
		Width:     512,
		Height:    512,
		BlurSize:  2,
		Threshold: 150,
		CannyLow:  10,
		CannyHigh: 255,
	}
}

// Extraction carries the intermediate products of a single extraction
// alongside the signature. The edge map and filled profile exist for
// inspection and overlay rendering; only the Signature is stored or
// compared.
type Extraction struct {
	// Edges is the binary edge map at processing resolution. Edge pixels
	// are 255, everything else 0.
	Edges *image.Gray

	// Profile holds the gap-filled absolute edge row per column, before
	// centering and normalization.
	Profile []float64

	// Signature is the centered, normalized profile.
	Signature Signature
}

// Extractor turns fragment photos into signatures. Instances are
// stateless apart from their parameters and safe for concurrent use.
type Extractor struct {
	params Params
}

// New returns an Extractor with the given parameters.
func New(params Params) *Extractor {
	return &Extractor{params: params}
}

// Params returns the extractor's processing parameters.
func (e *Extractor) Params() Params { return e.params }

// Extract derives the signature of a single fragment photo.
//
// Returns *ShapeError if the photo is narrower than the processing width,
// or ErrEmptyEdge if no tear edge survives preprocessing.
func (e *Extractor) Extract(img image.Image) (Signature, error) {
	res, err := e.Run(img)
	if err != nil {
		return nil, err
	}
	return res.Signature, nil
}

// Run performs a full extraction and returns the intermediate products
// along with the signature. Most callers want Extract; Run exists for
// overlay rendering and diagnostics.
func (e *Extractor) Run(img image.Image) (*Extraction, error) {
	p := e.params
	bounds := img.Bounds()
	if bounds.Dx() < p.Width || bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &ShapeError{Width: bounds.Dx(), Height: bounds.Dy(), MinWidth: p.Width}
	}

	binary := imaging.Preprocess(img, imaging.PreprocessOptions{
		Width:     p.Width,
		Height:    p.Height,
		BlurSize:  p.BlurSize,
		Threshold: p.Threshold,
	})
	edges := imaging.DetectEdges(binary, p.CannyLow, p.CannyHigh)

	profile, err := fillGaps(columnProfile(edges, p.Width, p.Height))
	if err != nil {
		return nil, err
	}

	// Only the shape of the tear matters, not where it sits vertically in
	// the frame: center on the mean, then normalize by the processing
	// width so signatures are scale-invariant at a given resolution.
	var mean float64
	for _, v := range profile {
		mean += v
	}
	mean /= float64(len(profile))

	sig := make(Signature, p.Width)
	for i, v := range profile {
		sig[i] = (v - mean) / float64(p.Width)
	}

	return &Extraction{Edges: edges, Profile: profile, Signature: sig}, nil
}
