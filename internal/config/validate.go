package config

import "fmt"

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	e := c.Extract
	if e.Width < 1 || e.Height < 1 {
		return fmt.Errorf("extract: processing resolution %dx%d must be positive", e.Width, e.Height)
	}
	if e.BlurSize < 1 {
		return fmt.Errorf("extract: blur_size %d must be at least 1", e.BlurSize)
	}
	if e.Threshold < 0 || e.Threshold > 255 {
		return fmt.Errorf("extract: threshold %d outside 0-255", e.Threshold)
	}
	if e.CannyLow < 0 || e.CannyLow > 255 || e.CannyHigh < 0 || e.CannyHigh > 255 {
		return fmt.Errorf("extract: canny thresholds %d/%d outside 0-255", e.CannyLow, e.CannyHigh)
	}
	if e.CannyLow > e.CannyHigh {
		return fmt.Errorf("extract: canny_low %d exceeds canny_high %d", e.CannyLow, e.CannyHigh)
	}
	if c.Store.Signatures == "" || c.Store.Matches == "" {
		return fmt.Errorf("store: signatures and matches paths must be set")
	}
	return nil
}
