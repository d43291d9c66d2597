package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"tearmatch/internal/config"
	"tearmatch/internal/imaging"
	"tearmatch/internal/match"
	"tearmatch/internal/signature"
	"tearmatch/internal/store"
)

// commandContext carries the lazily-initialized state shared by all
// subcommands: configuration, the photo loader, and the extractor built
// from the configured parameters.
type commandContext struct {
	configFlag *string
	cfg        *config.Config
	loader     *imaging.Loader
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		loader:     imaging.NewLoader(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) extractor() *signature.Extractor {
	e := c.cfg.Extract
	return signature.New(signature.Params{
		Width:     e.Width,
		Height:    e.Height,
		BlurSize:  e.BlurSize,
		Threshold: uint8(e.Threshold),
		CannyLow:  e.CannyLow,
		CannyHigh: e.CannyHigh,
	})
}

// loadState restores the persisted collection and match set. Blobs that do
// not exist yet yield fresh empty state; anything else that fails to load
// is surfaced, so a corrupt blob is never silently replaced by an empty
// one on the next save.
func (c *commandContext) loadState() (*match.Collection, *match.MatchSet, error) {
	collection, err := store.LoadCollection(c.cfg.Store.Signatures)
	switch {
	case err == nil:
		slog.Debug("loaded signature collection", "path", c.cfg.Store.Signatures, "entries", collection.Len())
	case errors.Is(err, fs.ErrNotExist):
		collection = match.NewCollection()
	default:
		return nil, nil, err
	}

	matches, err := store.LoadMatches(c.cfg.Store.Matches)
	switch {
	case err == nil:
		slog.Debug("loaded match set", "path", c.cfg.Store.Matches, "entries", matches.Len())
	case errors.Is(err, fs.ErrNotExist):
		matches = match.NewMatchSet()
	default:
		return nil, nil, err
	}

	return collection, matches, nil
}

func (c *commandContext) saveCollection(collection *match.Collection) error {
	return store.SaveCollection(c.cfg.Store.Signatures, collection)
}

func (c *commandContext) saveMatches(matches *match.MatchSet) error {
	return store.SaveMatches(c.cfg.Store.Matches, matches)
}
