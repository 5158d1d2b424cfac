// Command splicesort is the CLI entrypoint for the SpliceSort sample
// organizer.
//
// It parses flags, validates configuration and paths, and either runs
// environment diagnostics (--check), a metadata report (--analyze), or the
// classify-and-place pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bigteeny/splicesort/internal/check"
	"github.com/bigteeny/splicesort/internal/config"
	"github.com/bigteeny/splicesort/internal/display"
	"github.com/bigteeny/splicesort/internal/logging"
	"github.com/bigteeny/splicesort/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "splicesort: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "splicesort: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splicesort: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Fail fast if the source tree is missing or unreadable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// run can stop between files without leaving a partial copy.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	if cfg.AnalyzeOnly {
		pipeline.Analyze(ctx, &cfg, log)
		return 0
	}

	// Resolve and validate paths: source must exist, destination is created
	// if needed, and destination must not be inside source (prevents the
	// walk from rediscovering placed files).
	sourceAbs, err := absPath(cfg.SourceDir)
	if err != nil {
		log.Error("Source not found: %s", cfg.SourceDir)
		return 1
	}
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		log.Error("Cannot create destination directory: %s", cfg.DestDir)
		return 1
	}
	destAbs, err := absPath(cfg.DestDir)
	if err != nil {
		log.Error("Cannot resolve destination path: %s", cfg.DestDir)
		return 1
	}
	if err := cfg.ValidatePaths(sourceAbs, destAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose a destination path outside: %s", cfg.SourceDir)
		return 1
	}

	log.Info("=== SpliceSort v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.SourceDir)
	log.Info("Out: %s", cfg.DestDir)
	log.Info("")

	// Phase 4: Run the classify-and-place pipeline.
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of source vs destination directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
