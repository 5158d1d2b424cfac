// Package pipeline orchestrates sample discovery, per-file placement with
// collision resolution, and batch summary reporting.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/bigteeny/splicesort/internal/classify"
	"github.com/bigteeny/splicesort/internal/config"
	"github.com/bigteeny/splicesort/internal/display"
	"github.com/bigteeny/splicesort/internal/logging"
	"github.com/bigteeny/splicesort/internal/term"
)

// Run is the top-level batch entry point. It creates the destination layout,
// discovers audio files, places each one sequentially, and returns aggregate
// stats. Per-file failures are logged and counted; only a failure to create
// the destination layout aborts the run before any work.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	if !cfg.DryRun {
		if err := ensureLayout(cfg.DestDir); err != nil {
			log.Error("Cannot create destination layout: %v", err)
			stats.Failed++
			return stats
		}
	}

	files := Discover(cfg.SourceDir, func(path string, err error) {
		log.Error("Cannot read %s: %v", path, err)
	})
	stats.Total = len(files)
	reg := NewRegistry()

	log.Info("Found %d audio files (.wav, .mp3)", stats.Total)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be copied")
	}

	bar := newProgressBar(cfg, stats.Total)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted at file %d/%d", stats.Current, stats.Total)
			break
		}

		processFile(cfg, log, path, &stats, reg)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	logSummary(cfg, log, &stats)
	return stats
}

// ensureLayout creates the destination root and the fixed category
// subfolders before traversal begins.
func ensureLayout(destRoot string) error {
	for _, cat := range classify.Categories() {
		if err := os.MkdirAll(cat.Dir(destRoot), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// processFile handles one audio file: classify → resolve destination →
// copy → record. Failures are logged with the source path and counted;
// they never abort the batch.
func processFile(cfg *config.Config, log *logging.Logger, path string, stats *RunStats, reg *Registry) {
	name := filepath.Base(path)
	cat := classify.Classify(name)

	outcome, dest, err := resolveDestination(path, cat, cfg.DestDir, reg)
	if err != nil {
		log.Error("Cannot place %s: %v", path, err)
		stats.Failed++
		return
	}

	if cfg.DryRun {
		reg.Record(name)
		reg.Claim(dest)
		log.Info("[DRY] %s -> %s", name, dest)
		countOutcome(stats, outcome)
		return
	}

	log.Debug(cfg.Verbose, "Request:")
	log.Debug(cfg.Verbose, "  Source:      %s", path)
	log.Debug(cfg.Verbose, "  Destination: %s", dest)

	n, err := executePlacement(outcome, path, dest)
	if err != nil {
		log.Error("Cannot place %s: %v", path, err)
		stats.Failed++
		return
	}
	reg.Record(name)
	reg.Claim(dest)

	log.Debug(cfg.Verbose, "Copied:")
	log.Debug(cfg.Verbose, "  From: %s", path)
	log.Debug(cfg.Verbose, "  To:   %s", dest)

	stats.TotalBytes += n
	countOutcome(stats, outcome)
}

func countOutcome(stats *RunStats, outcome Outcome) {
	switch outcome {
	case PlacedFresh:
		stats.Fresh++
	case PlacedOverwrite:
		stats.Overwritten++
	case PlacedIndexed:
		stats.Indexed++
	}
}

// newProgressBar returns a batch progress bar, or nil when per-file logging
// is active (verbose/dry-run), stdout is not a TTY, or there is nothing to do.
func newProgressBar(cfg *config.Config, total int) *progressbar.ProgressBar {
	if cfg.Verbose || cfg.DryRun || total == 0 || !term.IsTerminal(os.Stdout) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Placing"),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d placed (%d fresh, %d overwritten, %d renamed), %d failed",
		stats.Placed(), stats.Fresh, stats.Overwritten, stats.Indexed, stats.Failed)
	if cfg.DryRun {
		log.Info("  Total copied: n/a (dry run)")
	} else {
		log.Info("  Total copied: %s", display.FormatBytes(stats.TotalBytes))
	}
	log.Success("Samples organized successfully.")
}
