package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/display"
	"github.com/bbimams/video-splitter/internal/ffmpeg"
	"github.com/bbimams/video-splitter/internal/naming"
	"github.com/bbimams/video-splitter/internal/planner"
	"github.com/bbimams/video-splitter/internal/probe"
	"github.com/bbimams/video-splitter/internal/report"
)

// stderrTailBytes caps how much ffmpeg stderr is kept per failed segment.
const stderrTailBytes = 500

// Logger is the minimal logging interface used by the runner, satisfied
// by *logging.Logger and by test fakes.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// ExecFunc runs a prepared ffmpeg argument slice. Injectable for tests.
type ExecFunc func(ctx context.Context, cfg *config.Config, args []string) ffmpeg.ExecResult

// ProbeFunc inspects a media file. Injectable for tests.
type ProbeFunc func(ctx context.Context, path string) (*probe.Result, error)

// ClipResult is the outcome of one planned segment: either a produced
// file with its probed properties, or a failure with the ffmpeg error.
type ClipResult struct {
	Segment     planner.Segment
	OK          bool
	SizeBytes   int64
	Err         string
	Width       int
	Height      int
	FrameRate   float64
	VideoCodec  string
	AudioCodec  string
	BitrateKbps int64
}

// RunReport is the full outcome of one run.
type RunReport struct {
	Source     *probe.Result
	SourceSize int64
	Plan       *planner.SplitPlan
	Clips      []ClipResult
	Stats      RunStats
	OutputDir  string
	ReportPath string
}

// Runner executes a configured split. Exec and Probe default to the real
// ffmpeg/ffprobe calls; Observe may be nil.
type Runner struct {
	Cfg     *config.Config
	Log     Logger
	Exec    ExecFunc
	Probe   ProbeFunc
	Observe Observer
}

// NewRunner returns a Runner wired to the real ffmpeg and ffprobe.
func NewRunner(cfg *config.Config, log Logger) *Runner {
	return &Runner{
		Cfg:   cfg,
		Log:   log,
		Exec:  ffmpeg.Execute,
		Probe: probe.Probe,
	}
}

func (r *Runner) notify(p Progress) {
	if r.Observe != nil {
		r.Observe(p)
	}
}

// Run performs the split: probe, plan, cut each segment, write the
// report. Individual segment failures are recorded in the returned
// report; the returned error is non-nil only for failures that abort
// the whole run.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	cfg := r.Cfg
	if err := cfg.ValidateRun(); err != nil {
		return nil, err
	}

	src, err := r.Probe(ctx, cfg.InputPath)
	if err != nil {
		return nil, err
	}

	var srcSize int64
	if fi, err := os.Stat(cfg.InputPath); err == nil {
		srcSize = fi.Size()
	}

	plan, err := planner.Build(cfg.InputPath, src.Duration(), cfg.SegmentMinutes)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	rep := &RunReport{
		Source:     src,
		SourceSize: srcSize,
		Plan:       plan,
		OutputDir:  cfg.OutputDir,
	}
	rep.Stats.Planned = plan.Count()

	r.notify(Progress{
		Stage: StageRunStart,
		Total: plan.Count(),
		Message: fmt.Sprintf("Splitting %s into %d clips of %v min...",
			filepath.Base(cfg.InputPath), plan.Count(), cfg.SegmentMinutes),
	})

	start := time.Now()
	for _, seg := range plan.Segments {
		if ctx.Err() != nil {
			break
		}
		r.runSegment(ctx, rep, seg)
	}
	rep.Stats.Elapsed = time.Since(start)

	if ctx.Err() != nil {
		r.notify(Progress{
			Stage: StageCancelled, Total: plan.Count(),
			Message: "Cancelled",
		})
		return rep, ctx.Err()
	}

	if len(rep.Clips) > 0 {
		path, err := r.writeReport(rep)
		if err != nil {
			return rep, err
		}
		rep.ReportPath = path
		r.notify(Progress{
			Stage: StageReportWritten, Index: plan.Count(), Total: plan.Count(),
			Filename: report.Filename,
			Message:  fmt.Sprintf("README.txt generated: %s", path),
		})
	}

	absOut, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		absOut = cfg.OutputDir
	}
	r.notify(Progress{
		Stage: StageRunDone, Index: plan.Count(), Total: plan.Count(),
		Message: fmt.Sprintf("All done! Files saved to: %s", absOut),
	})
	return rep, nil
}

// runSegment cuts one segment and appends its result to the report. A
// failed ffmpeg run removes the partial output and records the failure;
// the caller moves on to the next segment.
func (r *Runner) runSegment(ctx context.Context, rep *RunReport, seg planner.Segment) {
	cfg := r.Cfg
	plan := rep.Plan
	outPath := filepath.Join(cfg.OutputDir, seg.Filename)

	startLabel := naming.FormatLabel(seg.Start, plan.WithHours)
	endLabel := naming.FormatLabel(seg.End, plan.WithHours)

	r.notify(Progress{
		Stage: StageSegmentStart, Index: seg.Index, Total: plan.Count(),
		StartLabel: startLabel, EndLabel: endLabel, Filename: seg.Filename,
		Message: fmt.Sprintf("[%d/%d] Cutting %s -> %s ...",
			seg.Index+1, plan.Count(), startLabel, endLabel),
	})

	args := ffmpeg.Build(cfg, ffmpeg.Job{
		InputPath:  cfg.InputPath,
		OutputPath: outPath,
		Start:      seg.Start,
		Duration:   seg.Duration(),
		Convert:    cfg.ConvertToH264,
	})
	r.Log.Debug(cfg.Verbose, "ffmpeg args: %v", args)

	result := r.Exec(ctx, cfg, args)
	if result.Err != nil {
		os.Remove(outPath)

		// Cancelled mid-encode: record it and let the run loop emit
		// the cancellation event.
		if ctx.Err() != nil {
			rep.Clips = append(rep.Clips, ClipResult{Segment: seg, Err: "cancelled"})
			rep.Stats.Failed++
			return
		}

		detail := ffmpeg.StderrTail(result.Stderr, stderrTailBytes)
		if detail == "" {
			detail = result.Err.Error()
		}
		rep.Clips = append(rep.Clips, ClipResult{Segment: seg, Err: detail})
		rep.Stats.Failed++
		r.notify(Progress{
			Stage: StageSegmentFailed, Index: seg.Index, Total: plan.Count(),
			StartLabel: startLabel, EndLabel: endLabel, Filename: seg.Filename,
			Message: fmt.Sprintf("[%d/%d] FAILED: %s", seg.Index+1, plan.Count(), detail),
		})
		return
	}

	clip := ClipResult{Segment: seg, OK: true}
	if fi, err := os.Stat(outPath); err == nil {
		clip.SizeBytes = fi.Size()
		rep.Stats.TotalOutputBytes += fi.Size()
	}

	// Best effort: probe the produced clip for the report. A clip that
	// plays but cannot be probed still counts as done.
	if pr, err := r.Probe(ctx, outPath); err == nil {
		if v := pr.PrimaryVideo; v != nil {
			clip.Width = v.Width
			clip.Height = v.Height
		}
		clip.FrameRate = pr.FrameRate()
		clip.VideoCodec = pr.VideoCodec()
		clip.AudioCodec = pr.AudioCodec()
		clip.BitrateKbps = pr.Format.BitRate / 1000
	} else {
		r.Log.Debug(cfg.Verbose, "cannot probe produced clip %s: %v", seg.Filename, err)
	}

	rep.Clips = append(rep.Clips, clip)
	rep.Stats.Completed++
	r.notify(Progress{
		Stage: StageSegmentDone, Index: seg.Index, Total: plan.Count(),
		StartLabel: startLabel, EndLabel: endLabel, Filename: seg.Filename,
		Message: fmt.Sprintf("[%d/%d] Done: %s (%s)",
			seg.Index+1, plan.Count(), seg.Filename, display.FormatSize(clip.SizeBytes)),
	})
}

// writeReport renders and writes README.txt into the output directory.
func (r *Runner) writeReport(rep *RunReport) (string, error) {
	cfg := r.Cfg
	src := rep.Source

	var (
		sampleRate    int
		channels      int
		channelLayout string
	)
	if src.HasAudio() {
		a := src.AudioStreams[0]
		sampleRate = a.SampleRate
		channels = a.Channels
		channelLayout = a.ChannelLayout
	}

	var width, height int
	var pixFmt string
	if v := src.PrimaryVideo; v != nil {
		width, height, pixFmt = v.Width, v.Height, v.PixFmt
	}

	source := report.Source{
		Path:             cfg.InputPath,
		SizeBytes:        rep.SourceSize,
		Duration:         src.Duration(),
		Width:            width,
		Height:           height,
		FrameRate:        src.FrameRate(),
		PixFmt:           pixFmt,
		VideoCodec:       src.VideoCodec(),
		AudioCodec:       src.AudioCodec(),
		SampleRate:       sampleRate,
		Channels:         channels,
		ChannelLayout:    channelLayout,
		BitrateKbps:      src.Format.BitRate / 1000,
		VideoBitrateKbps: src.VideoBitRate() / 1000,
		HDR:              src.HDRType(),
		Interlaced:       src.IsInterlaced(),
	}

	settings := report.Settings{
		OutputDir:      cfg.OutputDir,
		SegmentMinutes: cfg.SegmentMinutes,
		Convert:        cfg.ConvertToH264,
		EncoderLabel:   cfg.EncoderLabel(),
	}
	if cfg.ConvertToH264 {
		if cfg.EncoderMode == config.EncoderCPU {
			settings.QualityLabel = fmt.Sprintf("CRF %d  (scale 0-51, lower = better quality)", cfg.CpuCRF)
			settings.PresetLabel = cfg.CpuPreset
		} else {
			settings.QualityLabel = fmt.Sprintf("CQ %d  (scale 0-51, lower = better quality)", cfg.NvencCQ)
			settings.PresetLabel = cfg.NvencPreset
		}
	}

	clips := make([]report.Clip, 0, len(rep.Clips))
	for _, c := range rep.Clips {
		clips = append(clips, report.Clip{
			Index:       c.Segment.Index,
			Filename:    c.Segment.Filename,
			StartLabel:  naming.FormatLabel(c.Segment.Start, rep.Plan.WithHours),
			EndLabel:    naming.FormatLabel(c.Segment.End, rep.Plan.WithHours),
			Duration:    c.Segment.Duration(),
			Width:       c.Width,
			Height:      c.Height,
			FrameRate:   c.FrameRate,
			VideoCodec:  c.VideoCodec,
			AudioCodec:  c.AudioCodec,
			BitrateKbps: c.BitrateKbps,
			SizeBytes:   c.SizeBytes,
			OK:          c.OK,
			ErrDetail:   c.Err,
		})
	}

	content := report.Render(source, settings, clips, time.Now())
	return report.WriteFile(cfg.OutputDir, content)
}
