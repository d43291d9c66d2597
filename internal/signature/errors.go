package signature

import (
	"errors"
	"fmt"
)

// ErrEmptyEdge is returned when the edge map contains no edge pixel in any
// column, leaving nothing to interpolate from. Typical causes are blank or
// all-dark photos where binarization removes the paper entirely.
var ErrEmptyEdge = errors.New("no edge pixels found in any column")

// ShapeError reports a fragment photo that is too small for the configured
// processing resolution. Fragments must be at least as wide as the
// processing width; downscaling is the supported direction.
type ShapeError struct {
	Width, Height int // source raster dimensions
	MinWidth      int // configured processing width
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("fragment %dx%d is narrower than processing width %d",
		e.Width, e.Height, e.MinWidth)
}

// DimensionMismatchError reports an attempt to compare signatures of
// different lengths. All signatures in a collection must be extracted at
// the same processing width; a mismatch is a contract violation, never
// silently truncated.
type DimensionMismatchError struct {
	Len, OtherLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("signature length mismatch: %d vs %d", e.Len, e.OtherLen)
}
