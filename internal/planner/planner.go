// Package planner turns a source duration and a segment length into a
// concrete split plan: contiguous segments covering the whole file, each
// with its output filename already derived.
package planner

import (
	"errors"
	"math"

	"github.com/bbimams/video-splitter/internal/naming"
)

var (
	// ErrSegmentLength is returned for a zero or negative segment length.
	ErrSegmentLength = errors.New("segment duration must be greater than zero")
	// ErrDuration is returned for a zero or negative source duration.
	ErrDuration = errors.New("video duration must be greater than zero")
)

// Segment is one planned clip: a half-open time range [Start, End) of the
// source and the filename it will be written to.
type Segment struct {
	Index    int
	Start    float64
	End      float64
	Filename string
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// SplitPlan is the full set of segments for one source file. Segments are
// contiguous and ordered; the last segment ends exactly at the source
// duration, so it is usually shorter than the rest.
type SplitPlan struct {
	InputPath      string
	Duration       float64
	SegmentSeconds float64
	WithHours      bool
	Segments       []Segment
}

// Count returns the number of planned segments.
func (p *SplitPlan) Count() int { return len(p.Segments) }

// Build computes the split plan for a source of the given duration, cut
// every segmentMinutes minutes. A segment length at or beyond the full
// duration yields a single segment covering the whole file.
func Build(inputPath string, duration, segmentMinutes float64) (*SplitPlan, error) {
	if segmentMinutes <= 0 {
		return nil, ErrSegmentLength
	}
	if duration <= 0 {
		return nil, ErrDuration
	}

	segSeconds := segmentMinutes * 60
	count := int(math.Ceil(duration / segSeconds))
	if count < 1 {
		count = 1
	}

	// Hour-form labels whenever any offset can reach an hour.
	withHours := duration >= 3600

	base := naming.BaseName(inputPath)
	plan := &SplitPlan{
		InputPath:      inputPath,
		Duration:       duration,
		SegmentSeconds: segSeconds,
		WithHours:      withHours,
		Segments:       make([]Segment, 0, count),
	}

	for i := 0; i < count; i++ {
		start := float64(i) * segSeconds
		end := start + segSeconds
		if end > duration || i == count-1 {
			end = duration
		}
		plan.Segments = append(plan.Segments, Segment{
			Index:    i,
			Start:    start,
			End:      end,
			Filename: naming.ClipFilename(base, start, end, withHours),
		})
	}
	return plan, nil
}
