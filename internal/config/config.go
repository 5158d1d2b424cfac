// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy organizer behavior for parity.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	SourceDir string
	DestDir   string

	// Behavior flags.
	Verbose bool // Per-file source → destination records.
	DryRun  bool // Classify and resolve collisions, but write nothing.

	// Modes.
	AnalyzeOnly bool // Print a metadata/category table and exit.
	CheckOnly   bool // Run --check diagnostics and exit.

	// Display and logging.
	ColorMode ColorMode
	LogFile   string // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Verbose:     false,
		DryRun:      false,
		AnalyzeOnly: false,
		CheckOnly:   false,
		ColorMode:   ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the required positional paths are present for the
// selected mode. Check mode needs no paths; analyze mode needs only the
// source; a normal run needs both source and destination.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.AnalyzeOnly {
		if c.SourceDir == "" {
			return errors.New("need a source_dir to analyze")
		}
		return nil
	}
	if c.SourceDir == "" || c.DestDir == "" {
		return errors.New("need exactly source_dir and dest_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved destination directory is not inside (or
// equal to) the resolved source directory. This prevents the run from
// re-discovering files it just placed. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep) {
		return errors.New("destination directory must not be inside source directory")
	}
	return nil
}
