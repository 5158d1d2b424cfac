package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("splicesort", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "splicesort v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (noColor -> ColorNever) or trigger exit
// (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers -v/--verbose, -d/--dry-run, -a/--analyze, -c/--check.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print source and destination for every copy")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview placements; do not copy")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.AnalyzeOnly, "analyze", false, "Print a metadata/category table and exit")
	fs.BoolVar(&cfg.AnalyzeOnly, "a", false, "Same as --analyze")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run environment diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
}

// defineDisplayFlags registers --color, --no-color, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets SourceDir and DestDir from the positional args.
// Check mode takes none; analyze mode takes just the source.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		if len(args) > 0 {
			cfg.SourceDir = NormalizeDirArg(args[0])
		}
		if len(args) > 1 {
			cfg.DestDir = NormalizeDirArg(args[1])
		}
		return nil
	}
	if cfg.AnalyzeOnly {
		if len(args) < 1 {
			return fmt.Errorf("need a source_dir to analyze")
		}
		cfg.SourceDir = NormalizeDirArg(args[0])
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly source_dir and dest_dir")
	}
	cfg.SourceDir = NormalizeDirArg(args[0])
	cfg.DestDir = NormalizeDirArg(args[1])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 24 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "SpliceSort v" + version + " — sample library organizer"},
		{"", ""},
		{"  splicesort [OPTIONS] <source_dir> <dest_dir>", ""},
		{"", ""},
		{"", "Copies .wav/.mp3 samples from source_dir into a fixed"},
		{"", "Drums/{808,Snare,Kick,Clap,Hat,Other} and Other/{Loop,Other}"},
		{"", "layout under dest_dir, classified by filename."},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview placements; do not copy"},
		{"  -a, --analyze", "Print a metadata/category table and exit"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Print source and destination for every copy"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Environment diagnostics (paths, layout, rules)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%s%s\n", l.flags, strings.Repeat(" ", padding), l.desc)
	}
}
