package signature

import (
	"image"
	"math"
)

// colSample holds the located edge row for a single column. ok is false
// when the column contained no edge pixel; such columns are filled by
// interpolation before any downstream math sees them.
type colSample struct {
	row float64
	ok  bool
}

// columnProfile scans the edge map column by column and averages the row
// indices of edge pixels (value 255). Columns without edge pixels yield an
// undefined sample. Multiple edge pixels per column are normal (the Canny
// line is often two pixels thick) and averaging collapses them to one
// position per column.
func columnProfile(edges *image.Gray, width, height int) []colSample {
	cols := make([]colSample, width)
	for x := 0; x < width; x++ {
		var sum float64
		var n int
		for y := 0; y < height; y++ {
			if edges.GrayAt(x, y).Y == 255 {
				sum += float64(y)
				n++
			}
		}
		if n > 0 {
			cols[x] = colSample{row: math.Round(sum / float64(n)), ok: true}
		}
	}
	return cols
}

// fillGaps resolves undefined columns by linear interpolation between the
// nearest defined neighbors on each side. Columns before the first defined
// sample take its value, and columns after the last defined sample take
// that one's value (nearest-value extrapolation at the boundaries). If no
// column is defined, ErrEmptyEdge is returned.
func fillGaps(cols []colSample) ([]float64, error) {
	first, last := -1, -1
	for i, c := range cols {
		if c.ok {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil, ErrEmptyEdge
	}

	out := make([]float64, len(cols))
	for i := 0; i <= first; i++ {
		out[i] = cols[first].row
	}
	for i := last; i < len(cols); i++ {
		out[i] = cols[last].row
	}

	prev := first
	for i := first + 1; i <= last; i++ {
		if !cols[i].ok {
			continue
		}
		out[i] = cols[i].row
		// Fill the gap (prev, i) along the straight line between the
		// two defined endpoints.
		if i-prev > 1 {
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				t := float64(j-prev) / span
				out[j] = cols[prev].row + t*(cols[i].row-cols[prev].row)
			}
		}
		prev = i
	}
	return out, nil
}
