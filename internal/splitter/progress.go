package splitter

// Stage identifies what a Progress event reports.
type Stage int

const (
	// StageRunStart fires once after planning, before the first segment.
	StageRunStart Stage = iota
	// StageSegmentStart fires before each ffmpeg invocation.
	StageSegmentStart
	// StageSegmentDone fires after a segment is written successfully.
	StageSegmentDone
	// StageSegmentFailed fires when ffmpeg fails for one segment. The
	// run continues with the next segment.
	StageSegmentFailed
	// StageCancelled fires once when the run stops on a cancelled
	// context. No further events follow.
	StageCancelled
	// StageReportWritten fires after README.txt is written.
	StageReportWritten
	// StageRunDone fires once at the end of a completed run.
	StageRunDone
)

// Progress is one observer event. Index counts segments from zero;
// labels and Filename are empty for run-level events.
type Progress struct {
	Stage      Stage
	Index      int
	Total      int
	StartLabel string
	EndLabel   string
	Filename   string
	Message    string
}

// Observer receives progress events during a run. Called from the run's
// goroutine; implementations that cross goroutines must hand off.
type Observer func(Progress)
