package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/bigteeny/splicesort/internal/classify"
	"github.com/bigteeny/splicesort/internal/config"
	"github.com/bigteeny/splicesort/internal/logging"
	"github.com/bigteeny/splicesort/internal/term"
)

// fileRow holds the per-file data for the analysis table.
type fileRow struct {
	Name     string
	Category string
	Format   string
	Title    string
	Artist   string
}

// Analyze discovers audio files, classifies each one, reads embedded
// metadata where available, and prints a tabular report with a per-category
// summary. It never writes to the destination; classification stays
// filename-only even when tags are readable.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) {
	files := Discover(cfg.SourceDir, func(path string, err error) {
		log.Warn("Cannot read %s: %v", path, err)
	})
	if len(files) == 0 {
		log.Warn("No audio files found in %s", cfg.SourceDir)
		return
	}

	total := len(files)
	log.Info("Analyzing %d files in %s …", total, cfg.SourceDir)
	fmt.Println()

	isTTY := term.IsTerminal(os.Stdout)
	rows := make([]fileRow, 0, total)
	perCategory := make(map[string]int)

	for i, path := range files {
		if ctx.Err() != nil {
			if isTTY {
				clearProgress()
			}
			log.Warn("Interrupted")
			return
		}

		printProgress(isTTY, i+1, total, filepath.Base(path))

		name := filepath.Base(path)
		cat := classify.Classify(name)
		row := fileRow{
			Name:     name,
			Category: cat.String(),
			Format:   "n/a",
			Title:    "-",
			Artist:   "-",
		}
		readTags(&row, path)

		rows = append(rows, row)
		perCategory[cat.String()]++
	}

	if isTTY {
		clearProgress()
	}

	printAnalysisTable(rows)
	printAnalysisSummary(log, rows, perCategory)
}

// readTags fills format/title/artist from embedded metadata. WAV files and
// untagged MP3s fail to parse; the row keeps its placeholders.
func readTags(row *fileRow, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return
	}
	row.Format = string(meta.FileType())
	if t := meta.Title(); t != "" {
		row.Title = t
	}
	if a := meta.Artist(); a != "" {
		row.Artist = a
	}
}

func printAnalysisTable(rows []fileRow) {
	nameW := len("File")
	catW := len("Category")
	fmtW := len("Format")
	titleW := len("Title")
	artistW := len("Artist")

	for _, r := range rows {
		nameW = maxInt(nameW, len(r.Name))
		catW = maxInt(catW, len(r.Category))
		fmtW = maxInt(fmtW, len(r.Format))
		titleW = maxInt(titleW, len(r.Title))
		artistW = maxInt(artistW, len(r.Artist))
	}

	if nameW > 50 {
		nameW = 50
	}
	if titleW > 30 {
		titleW = 30
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %-*s",
		nameW, "File",
		catW, "Category",
		fmtW, "Format",
		titleW, "Title",
		artistW, "Artist",
	)
	separator := "  " + strings.Repeat("─", len(header)-2)

	fmt.Println(header)
	fmt.Println(separator)

	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-*s  %-*s  %s\n",
			nameW, truncate(r.Name, nameW),
			catW, r.Category,
			fmtW, r.Format,
			titleW, truncate(r.Title, titleW),
			r.Artist,
		)
	}
	fmt.Println()
}

func printAnalysisSummary(log *logging.Logger, rows []fileRow, perCategory map[string]int) {
	log.Info("Analyzed %d files", len(rows))
	for _, cat := range classify.Categories() {
		if n := perCategory[cat.String()]; n > 0 {
			log.Info("  %-12s %d", cat.String(), n)
		}
	}
}

// truncate shortens s to at most width runes, ending in an ellipsis.
// Slicing by runes keeps multi-byte filenames intact.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// printProgress shows a live analysis counter. On a TTY it writes an inline
// \r-overwritten line; otherwise it is a no-op.
func printProgress(isTTY bool, current, total int, name string) {
	if !isTTY {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Reading [%d/%d] %d%% ", current, total, pct)

	status += truncate(name, 40)

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress() {
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}
