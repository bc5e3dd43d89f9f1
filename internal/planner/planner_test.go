package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/bbimams/video-splitter/internal/naming"
)

func TestBuild_930SecondsAt10Minutes(t *testing.T) {
	plan, err := Build("/media/recording.mkv", 930, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if plan.Count() != 2 {
		t.Fatalf("count: got %d, want 2", plan.Count())
	}
	if plan.WithHours {
		t.Error("WithHours should be false under an hour")
	}

	s0, s1 := plan.Segments[0], plan.Segments[1]
	if s0.Start != 0 || s0.End != 600 {
		t.Errorf("segment 0: got [%v, %v), want [0, 600)", s0.Start, s0.End)
	}
	if s1.Start != 600 || s1.End != 930 {
		t.Errorf("segment 1: got [%v, %v), want [600, 930)", s1.Start, s1.End)
	}
	if s0.Filename != "recording_00-00 - 10-00.mp4" {
		t.Errorf("segment 0 filename: got %q", s0.Filename)
	}
	if s1.Filename != "recording_10-00 - 15-30.mp4" {
		t.Errorf("segment 1 filename: got %q", s1.Filename)
	}
}

func TestBuild_SingleSegmentWhenShorter(t *testing.T) {
	// 45 second file, 1 minute segments: one clip covering everything.
	plan, err := Build("clip.mp4", 45, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Count() != 1 {
		t.Fatalf("count: got %d, want 1", plan.Count())
	}
	s := plan.Segments[0]
	if s.Start != 0 || s.End != 45 {
		t.Errorf("got [%v, %v), want [0, 45)", s.Start, s.End)
	}
	if s.Filename != "clip_00-00 - 00-45.mp4" {
		t.Errorf("filename: got %q", s.Filename)
	}
}

func TestBuild_ExactMultiple(t *testing.T) {
	// 1200s at 10 minutes: exactly two full segments, no empty tail.
	plan, err := Build("x.mp4", 1200, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Count() != 2 {
		t.Fatalf("count: got %d, want 2", plan.Count())
	}
	last := plan.Segments[1]
	if last.End != 1200 {
		t.Errorf("last end: got %v, want 1200", last.End)
	}
	if last.Duration() != 600 {
		t.Errorf("last duration: got %v, want 600", last.Duration())
	}
}

func TestBuild_HourLabels(t *testing.T) {
	// 90 minute file at 40 minute segments crosses the hour mark, so all
	// labels switch to the HH-MM-SS form.
	plan, err := Build("movie.mkv", 5400, 40)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !plan.WithHours {
		t.Fatal("WithHours should be true at or beyond an hour")
	}
	if plan.Count() != 3 {
		t.Fatalf("count: got %d, want 3", plan.Count())
	}
	if got := plan.Segments[0].Filename; got != "movie_00-00-00 - 00-40-00.mp4" {
		t.Errorf("segment 0 filename: got %q", got)
	}
	if got := plan.Segments[2].Filename; got != "movie_01-20-00 - 01-30-00.mp4" {
		t.Errorf("segment 2 filename: got %q", got)
	}
}

func TestBuild_InvalidInputs(t *testing.T) {
	if _, err := Build("x.mp4", 930, 0); !errors.Is(err, ErrSegmentLength) {
		t.Errorf("zero minutes: got %v, want ErrSegmentLength", err)
	}
	if _, err := Build("x.mp4", 930, -5); !errors.Is(err, ErrSegmentLength) {
		t.Errorf("negative minutes: got %v, want ErrSegmentLength", err)
	}
	if _, err := Build("x.mp4", 0, 10); !errors.Is(err, ErrDuration) {
		t.Errorf("zero duration: got %v, want ErrDuration", err)
	}
}

func TestBuild_ContiguousAndGapless(t *testing.T) {
	durations := []float64{7.5, 61, 930, 3599.9, 3600, 7262.4}
	minutes := []float64{0.5, 1, 2.5, 10, 45}

	for _, d := range durations {
		for _, m := range minutes {
			plan, err := Build("x.mp4", d, m)
			if err != nil {
				t.Fatalf("Build(%v, %v): %v", d, m, err)
			}

			want := int(math.Ceil(d / (m * 60)))
			if plan.Count() != want {
				t.Errorf("Build(%v, %v): count %d, want %d", d, m, plan.Count(), want)
			}
			if plan.Segments[0].Start != 0 {
				t.Errorf("Build(%v, %v): first start %v", d, m, plan.Segments[0].Start)
			}
			if last := plan.Segments[plan.Count()-1]; last.End != d {
				t.Errorf("Build(%v, %v): last end %v, want %v", d, m, last.End, d)
			}
			for i := 1; i < plan.Count(); i++ {
				if plan.Segments[i].Start != plan.Segments[i-1].End {
					t.Errorf("Build(%v, %v): gap at segment %d", d, m, i)
				}
			}
			for i, s := range plan.Segments {
				if s.Index != i {
					t.Errorf("Build(%v, %v): index %d at position %d", d, m, s.Index, i)
				}
				if s.Duration() <= 0 {
					t.Errorf("Build(%v, %v): empty segment %d", d, m, i)
				}
			}
		}
	}
}

func TestBuild_LabelsRoundTrip(t *testing.T) {
	plan, err := Build("talk.mp4", 4000, 12)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, s := range plan.Segments {
		start := naming.FormatLabel(s.Start, plan.WithHours)
		back, err := naming.ParseLabel(start)
		if err != nil {
			t.Fatalf("ParseLabel(%q): %v", start, err)
		}
		// Labels truncate fractional seconds.
		if back != math.Trunc(s.Start) {
			t.Errorf("segment %d: label %q parsed to %v, start %v", s.Index, start, back, s.Start)
		}
	}
}
