package splitter

import "time"

// RunStats tracks aggregate counters and byte totals across one run.
type RunStats struct {
	Planned          int
	Completed        int
	Failed           int
	TotalOutputBytes int64
	Elapsed          time.Duration
}

// AllOK reports whether every planned segment was produced.
func (s *RunStats) AllOK() bool {
	return s.Failed == 0 && s.Completed == s.Planned
}
