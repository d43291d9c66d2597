// Package imaging prepares fragment photographs for signature extraction.
//
// It covers the raster-level half of the pipeline: loading and decoding
// fragment photos, resampling them to the processing resolution, reducing
// them to a binary paper/background image, and tracing the tear boundary
// with Canny edge detection. The numeric half (profile derivation and
// normalization) lives in the signature package.
//
// All coordinates are 0-based with (0,0) at the top-left corner; X grows
// rightward and Y grows downward. Edge maps use the Gray color model with
// exactly two values: 255 for edge pixels, 0 for everything else.
//
// The Loader type is safe for concurrent use. The processing functions are
// pure: they never mutate their input image.
package imaging
