// Package config loads and validates tearmatch configuration.
//
// Configuration lives in a TOML file with two sections: [extract] holds
// the processing parameters of the signature extractor, and [store] holds
// the blob paths for the persisted collection and match set. Every field
// has a default; a missing config file simply yields the defaults, while a
// present-but-malformed file is an error.
//
// The file is located from, in order: an explicit path (--config),
// $TEARMATCH_CONFIG, and the default location under ~/.config/tearmatch.
package config
