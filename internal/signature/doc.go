// Package signature derives identity vectors from photographs of torn
// paper edges.
//
// A torn edge is reduced to a one-dimensional profile: for every column of
// the processing-resolution edge map, the vertical position of the tear is
// located, gaps are filled by linear interpolation, the profile is centered
// on its own mean, and the result is normalized by the processing width.
// The resulting Signature is the unit of comparison: two fragments torn
// from the same sheet produce signatures at small Euclidean distance.
//
// # Pipeline
//
// Extraction runs a fixed sequence with no backtracking:
//
//  1. Resize the fragment photo to the processing resolution using
//     Catmull-Rom (cubic) resampling. The cubic filter deliberately blurs
//     small-scale fiber noise while preserving the large peaks and valleys
//     of the tear curve.
//  2. Convert to single-channel luminance.
//  3. Box-blur with a small window to suppress grain.
//  4. Binarize at a fixed luminance threshold.
//  5. Run Canny edge detection, producing a binary edge map.
//  6. Per column, average the rows of edge pixels; columns with no edge
//     pixel are filled by linear interpolation from their defined
//     neighbors.
//  7. Center on the mean and normalize by the processing width.
//
// # Determinism
//
// Extraction involves no randomness: identical input and identical
// parameters produce bit-identical signatures.
//
// # Errors
//
// A source photo narrower than the processing width fails with *ShapeError.
// An edge map with no edge pixel in any column (blank or pathological
// input) fails with ErrEmptyEdge. Callers must treat either as "no
// signature for this fragment"; never substitute a zero vector.
package signature
