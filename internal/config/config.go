package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Extract contains the signature extractor's processing parameters.
type Extract struct {
	// Width and Height of the processing resolution every fragment photo
	// is resampled to. Signatures are only comparable at equal width.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// BlurSize is the box-blur window side in pixels.
	BlurSize int `toml:"blur_size"`

	// Threshold is the binarization luminance cutoff (0-255).
	Threshold int `toml:"threshold"`

	// CannyLow and CannyHigh are the edge detector's hysteresis
	// thresholds (0-255, low <= high).
	CannyLow  int `toml:"canny_low"`
	CannyHigh int `toml:"canny_high"`
}

// Store contains the on-disk locations of the persisted state.
type Store struct {
	Signatures string `toml:"signatures"`
	Matches    string `toml:"matches"`
}

// Config encapsulates all tearmatch configuration.
type Config struct {
	Extract Extract `toml:"extract"`
	Store   Store   `toml:"store"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tearmatch/config.toml")
}

// Load reads the configuration at path, falling back to $TEARMATCH_CONFIG
// and then the default location when path is empty. A missing file is not
// an error; defaults apply. An unreadable or unparsable file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TEARMATCH_CONFIG")
	}
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return finalize(&cfg)
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finalize(&cfg)
}

// finalize expands store paths and validates the result.
func finalize(cfg *Config) (*Config, error) {
	var err error
	if cfg.Store.Signatures, err = expandPath(cfg.Store.Signatures); err != nil {
		return nil, err
	}
	if cfg.Store.Matches, err = expandPath(cfg.Store.Matches); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// expandPath resolves a leading "~/" against the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
