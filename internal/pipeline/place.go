package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bigteeny/splicesort/internal/classify"
)

// maxCollisionIndex bounds the indexed-rename search. The ceiling is far
// beyond any realistic sample library; hitting it means something is wrong
// with the destination, so the file is reported as failed rather than
// searched forever.
const maxCollisionIndex = 999999

// ErrCollisionExhausted is returned when no free indexed filename could be
// found under the destination root.
var ErrCollisionExhausted = errors.New("no free indexed filename under destination root")

// Outcome is the terminal state of a single successful placement.
type Outcome int

const (
	// PlacedFresh: the candidate destination was unoccupied.
	PlacedFresh Outcome = iota
	// PlacedOverwrite: a like-named file from a previous run sat at the
	// destination and was replaced.
	PlacedOverwrite
	// PlacedIndexed: this run already placed a file with the same base name;
	// the copy was diverted to an indexed name directly under the
	// destination root.
	PlacedIndexed
)

// resolveDestination decides where src will land and how, without writing
// anything. A candidate counts as occupied when it exists on disk or has
// been claimed by this run; the claim set only diverges from the disk in
// dry-run, where it stands in for the copies a real run would have made.
func resolveDestination(src string, cat classify.Category, destRoot string, reg *Registry) (Outcome, string, error) {
	name := filepath.Base(src)
	candidate := classify.DestPath(cat, destRoot, name)

	if !pathExists(candidate) && !reg.Claimed(candidate) {
		return PlacedFresh, candidate, nil
	}
	if !reg.Contains(name) {
		return PlacedOverwrite, candidate, nil
	}

	indexed, err := freeIndexedPath(destRoot, name, reg)
	if err != nil {
		return 0, "", err
	}
	return PlacedIndexed, indexed, nil
}

// executePlacement performs the copy decided by resolveDestination: it
// creates the parent directory, removes the stale file on an overwrite, and
// copies src byte-for-byte. Returns the number of bytes copied.
func executePlacement(outcome Outcome, src, dest string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("create destination directory: %w", err)
	}
	if outcome == PlacedOverwrite {
		if err := os.Remove(dest); err != nil {
			return 0, fmt.Errorf("remove stale destination: %w", err)
		}
	}
	return copyFile(src, dest)
}

// freeIndexedPath finds the first "<stem>_<n><ext>" directly under destRoot
// that is neither on disk nor claimed by this run, n counting up from 0.
func freeIndexedPath(destRoot, filename string, reg *Registry) (string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for n := 0; n <= maxCollisionIndex; n++ {
		candidate := filepath.Join(destRoot, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !pathExists(candidate) && !reg.Claimed(candidate) {
			return candidate, nil
		}
	}
	return "", ErrCollisionExhausted
}

// copyFile copies src to dest byte-for-byte. On any failure the partial
// destination is removed, so a half-written file never survives the call.
func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dest)
		return 0, err
	}
	return n, nil
}

// pathExists reports whether path is occupied. Stat errors other than
// "not exist" (e.g. permission) count as occupied; the subsequent write will
// surface the real error.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	return !errors.Is(err, fs.ErrNotExist)
}
