package config

const (
	defaultWidth      = 512
	defaultHeight     = 512
	defaultBlurSize   = 2
	defaultThreshold  = 150
	defaultCannyLow   = 10
	defaultCannyHigh  = 255
	defaultSignatures = "~/.local/share/tearmatch/signatures.db"
	defaultMatches    = "~/.local/share/tearmatch/matches.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Extract: Extract{
			Width:     defaultWidth,
			Height:    defaultHeight,
			BlurSize:  defaultBlurSize,
			Threshold: defaultThreshold,
			CannyLow:  defaultCannyLow,
			CannyHigh: defaultCannyHigh,
		},
		Store: Store{
			Signatures: defaultSignatures,
			Matches:    defaultMatches,
		},
	}
}
