// Package check provides environment diagnostics (--check mode) and
// pre-run validation (CheckDeps) for the source and destination paths.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bigteeny/splicesort/internal/classify"
	"github.com/bigteeny/splicesort/internal/config"
	"github.com/bigteeny/splicesort/internal/term"
)

// Sentinel errors returned by CheckDeps when a required path is unusable.
var (
	ErrSourceMissing     = errors.New("source directory does not exist")
	ErrSourceNotDir      = errors.New("source path is not a directory")
	ErrSourceNotReadable = errors.New("source directory is not readable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: source readability,
// destination writability, terminal state, and the classification rule
// table. Returns false if any hard check failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Environment Check ===")

	ok := true
	if !checkSource(cfg, log) {
		ok = false
	}
	if !checkDestination(cfg, log) {
		ok = false
	}
	checkTerminal(log)
	printRules(log)
	printLayout(log)
	return ok
}

// checkSource verifies the source directory exists and is listable.
func checkSource(cfg *config.Config, log Logger) bool {
	if cfg.SourceDir == "" {
		log.Warn("No source directory given; skipping source checks")
		return true
	}
	if err := CheckDeps(cfg); err != nil {
		log.Error("Source: %v", err)
		return false
	}
	log.Success("Source readable: %s", cfg.SourceDir)
	return true
}

// checkDestination verifies the destination can be created and written to.
// The probe file is removed immediately.
func checkDestination(cfg *config.Config, log Logger) bool {
	if cfg.DestDir == "" {
		log.Warn("No destination directory given; skipping destination checks")
		return true
	}
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		log.Error("Destination: cannot create %s: %v", cfg.DestDir, err)
		return false
	}
	probe, err := os.CreateTemp(cfg.DestDir, ".splicesort-*")
	if err != nil {
		log.Error("Destination: not writable: %v", err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	log.Success("Destination writable: %s", cfg.DestDir)
	return true
}

// checkTerminal reports TTY and color state.
func checkTerminal(log Logger) {
	if term.IsTerminal(os.Stdout) {
		log.Info("Terminal: stdout is a TTY")
	} else {
		log.Info("Terminal: stdout is not a TTY (piped or redirected)")
	}
	if term.Enabled() {
		log.Info("Colors: enabled")
	} else {
		log.Info("Colors: disabled")
	}
}

// printRules dumps the ordered classification rule table.
func printRules(log Logger) {
	log.Info("Classification rules (first match wins):")
	for i, r := range classify.Rules {
		log.Info("  %d. %-24s -> %s", i+1, strings.Join(r.Substrings, ", "), r.Category)
	}
	log.Info("  %d. %-24s -> %s", len(classify.Rules)+1, "(default)", classify.OtherOther)
}

// printLayout dumps the destination folder layout.
func printLayout(log Logger) {
	log.Info("Destination layout:")
	for _, cat := range classify.Categories() {
		log.Info("  <dest>/%s/%s/", cat.Group, cat.Subgroup)
	}
}

// CheckDeps is the pre-run validation: the source directory must exist, be a
// directory, and be listable. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	fi, err := os.Stat(cfg.SourceDir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, cfg.SourceDir)
	}
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, cfg.SourceDir)
	}
	if _, err := os.ReadDir(cfg.SourceDir); err != nil {
		return fmt.Errorf("%w: %v", ErrSourceNotReadable, err)
	}
	return nil
}
