package signature

import "math"

// Signature is a normalized tear-edge displacement profile. Each entry is
// the vertical deviation of the tear from its mean position in one column
// of the processing-resolution image, divided by the processing width.
// Entries are nominally within [-1, 1] for well-formed tear photos.
type Signature []float64

// Distance returns the Euclidean (L2) distance between two signatures.
//
// Signatures of unequal length cannot be compared; that case returns a
// *DimensionMismatchError.
func (s Signature) Distance(other Signature) (float64, error) {
	if len(s) != len(other) {
		return 0, &DimensionMismatchError{Len: len(s), OtherLen: len(other)}
	}
	var sum float64
	for i := range s {
		d := s[i] - other[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Clone returns an independent copy of the signature.
func (s Signature) Clone() Signature {
	out := make(Signature, len(s))
	copy(out, s)
	return out
}
