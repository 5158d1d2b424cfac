package pipeline

import "strings"

// Registry records the base filenames successfully placed during the current
// run, compared case-insensitively. It distinguishes a stale destination file
// left over from a previous run (overwrite it) from an intra-run duplicate
// (divert to an indexed name). A name is recorded only after its copy has
// succeeded, so a failed placement never claims the name.
//
// It also tracks the destination paths claimed this run. During a real run a
// claimed path always exists on disk; in dry-run nothing is written, so the
// claim set is what lets collision resolution preview the same fresh /
// overwrite / indexed outcomes a real run would produce.
//
// The registry lives for one run and is never persisted.
type Registry struct {
	names   map[string]struct{}
	claimed map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names:   make(map[string]struct{}),
		claimed: make(map[string]struct{}),
	}
}

// Contains reports whether a file with this base name was already placed
// during the current run.
func (r *Registry) Contains(filename string) bool {
	_, ok := r.names[strings.ToLower(filename)]
	return ok
}

// Record marks filename as placed.
func (r *Registry) Record(filename string) {
	r.names[strings.ToLower(filename)] = struct{}{}
}

// Len returns the number of distinct base names placed so far.
func (r *Registry) Len() int { return len(r.names) }

// Claim marks a destination path as taken by this run.
func (r *Registry) Claim(path string) {
	r.claimed[path] = struct{}{}
}

// Claimed reports whether this run has already placed (or, in dry-run,
// simulated placing) a file at path.
func (r *Registry) Claimed(path string) bool {
	_, ok := r.claimed[path]
	return ok
}
