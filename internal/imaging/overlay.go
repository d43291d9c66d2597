package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RenderOverlay draws the extracted displacement profile on top of the
// edge map for visual inspection of an extraction.
//
// The edge map is rendered as faint gray on black, and the profile curve
// is drawn over it colored by displacement from the profile mean: blue at
// the mean, through green, to red at the largest deviation. A flat tear
// renders as a mostly-blue line; pronounced peaks and valleys light up.
//
// profile must hold one absolute row position per edge-map column, as
// produced by a full extraction.
func RenderOverlay(edges *image.Gray, profile []float64) (*image.NRGBA, error) {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if len(profile) != width {
		return nil, fmt.Errorf("profile length %d does not match edge map width %d", len(profile), width)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	faint := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y == 255 {
				out.SetNRGBA(x, y, faint)
			}
		}
	}

	var mean float64
	for _, v := range profile {
		mean += v
	}
	mean /= float64(len(profile))

	var maxDev float64
	for _, v := range profile {
		if d := math.Abs(v - mean); d > maxDev {
			maxDev = d
		}
	}

	for x, v := range profile {
		t := 0.0
		if maxDev > 0 {
			t = math.Abs(v-mean) / maxDev
		}
		// Hue 240 (blue) at the mean down to 0 (red) at max deviation.
		c := colorful.Hsv(240*(1-t), 1, 1)
		r, g, b := c.RGB255()
		mark := color.NRGBA{R: r, G: g, B: b, A: 255}

		y := clamp(int(math.Round(v)), 0, height-1)
		// Thicken to 3px vertically so the curve reads at a glance.
		for dy := -1; dy <= 1; dy++ {
			out.SetNRGBA(x, clamp(y+dy, 0, height-1), mark)
		}
	}

	return out, nil
}
