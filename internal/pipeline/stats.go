package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total       int // Audio files discovered.
	Current     int // 1-based index of the file being processed.
	Fresh       int // Copied to an unoccupied destination.
	Overwritten int // Replaced a stale file from a previous run.
	Indexed     int // Diverted to an indexed name under the destination root.
	Failed      int
	TotalBytes  int64 // Bytes copied (zero in dry-run).
}

// Placed returns the number of files that reached a destination.
func (s *RunStats) Placed() int {
	return s.Fresh + s.Overwritten + s.Indexed
}
