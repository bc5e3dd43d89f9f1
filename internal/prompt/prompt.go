// Package prompt implements the interactive terminal front end: it walks
// the user through input file, segment length, conversion choice, and
// output directory, then runs the split with printed progress.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bbimams/video-splitter/internal/check"
	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/display"
	"github.com/bbimams/video-splitter/internal/naming"
	"github.com/bbimams/video-splitter/internal/probe"
	"github.com/bbimams/video-splitter/internal/splitter"
)

// ErrAborted is returned when the user declines the confirmation prompt.
var ErrAborted = errors.New("aborted by user")

const divider = "======================================================="

// Flow drives the interactive session. In, Out, Probe, Verify, and Split
// are injectable for tests; New wires the real implementations.
type Flow struct {
	Cfg    *config.Config
	Log    splitter.Logger
	In     *bufio.Reader
	Out    io.Writer
	Probe  splitter.ProbeFunc
	Verify func(config.EncoderMode) error
	Split  func(ctx context.Context) (*splitter.RunReport, error)
}

// New returns a Flow reading stdin and writing stdout, wired to the real
// probe, encoder check, and splitter.
func New(cfg *config.Config, log splitter.Logger) *Flow {
	f := &Flow{
		Cfg:    cfg,
		Log:    log,
		In:     bufio.NewReader(os.Stdin),
		Out:    os.Stdout,
		Probe:  probe.Probe,
		Verify: check.VerifyEncoder,
	}
	f.Split = func(ctx context.Context) (*splitter.RunReport, error) {
		r := splitter.NewRunner(cfg, log)
		r.Observe = f.printProgress
		return r.Run(ctx)
	}
	return f
}

// Run walks the prompt sequence and performs the split. Returns
// ErrAborted when the user declines, or the underlying error when the
// run fails.
func (f *Flow) Run(ctx context.Context) error {
	src, err := f.askInputFile(ctx)
	if err != nil {
		return err
	}

	if err := f.askSegmentMinutes(src.Duration()); err != nil {
		return err
	}

	if err := f.askConversion(src); err != nil {
		return err
	}

	if err := f.askOutputDir(); err != nil {
		return err
	}

	if err := f.confirm(src); err != nil {
		return err
	}

	report, err := f.Split(ctx)
	if err != nil {
		return err
	}
	if report.Stats.Failed > 0 {
		f.printf("\n%d of %d clips failed; see README.txt for details.\n",
			report.Stats.Failed, report.Stats.Planned)
	}
	return nil
}

// --- prompt steps ---

func (f *Flow) askInputFile(ctx context.Context) (*probe.Result, error) {
	cfg := f.Cfg
	for {
		path, err := f.ask("\nEnter video file path: ")
		if err != nil {
			return nil, err
		}
		path = trimQuotes(path)
		fi, statErr := os.Stat(path)
		if statErr != nil || fi.IsDir() {
			f.printf("   File not found: %s\n", path)
			continue
		}
		if !splitter.IsMediaFile(path) {
			f.printf("   Note: unrecognized video extension, trying anyway.\n")
		}

		f.printf("\nReading video info...\n")
		src, err := f.Probe(ctx, path)
		if err != nil {
			f.printf("   %v\n", err)
			continue
		}

		cfg.InputPath = path
		f.printf("   Codec      : %s\n", strings.ToUpper(src.VideoCodec()))
		f.printf("   Resolution : %s @ %v fps\n", src.Resolution(), src.FrameRate())
		f.printf("   Duration   : %s  (%.1f min)\n",
			display.FormatHHMMSS(src.Duration()), src.Duration()/60)
		return src, nil
	}
}

func (f *Flow) askSegmentMinutes(duration float64) error {
	for {
		answer, err := f.ask("\nSegment duration in minutes (e.g. 10): ")
		if err != nil {
			return err
		}
		minutes, parseErr := strconv.ParseFloat(answer, 64)
		if parseErr != nil {
			f.printf("   Enter a valid number.\n")
			continue
		}
		if minutes <= 0 {
			f.printf("   Must be greater than 0.\n")
			continue
		}
		if minutes*60 >= duration {
			f.printf("   Segment duration exceeds video length. Try a smaller value.\n")
			continue
		}
		f.Cfg.SegmentMinutes = minutes
		return nil
	}
}

// askConversion offers the H.264 re-encode for AV1 sources and verifies
// the chosen encoder actually works before committing to it.
func (f *Flow) askConversion(src *probe.Result) error {
	cfg := f.Cfg
	cfg.ConvertToH264 = false
	if !src.IsAV1() {
		return nil
	}

	f.printf("\nWARNING: Video uses AV1 encoding.\n")
	f.printf("   AV1 has limited compatibility with some devices and players.\n")
	answer, err := f.ask("   Convert to H.264? (y/n): ")
	if err != nil {
		return err
	}
	if !isYes(answer) {
		f.printf("   Video will be split without conversion (keeping AV1).\n")
		return nil
	}

	if err := f.Verify(cfg.EncoderMode); err != nil {
		f.printf("   ERROR: %v\n", err)
		return err
	}
	cfg.ConvertToH264 = true
	f.printf("   Video will be converted to %s.\n", cfg.EncoderLabel())
	return nil
}

func (f *Flow) askOutputDir() error {
	cfg := f.Cfg
	defaultDir := naming.DefaultOutputDir(cfg.InputPath)
	f.printf("\nDefault output folder: %s\n", defaultDir)
	answer, err := f.ask("   Press Enter for default, or type a custom path: ")
	if err != nil {
		return err
	}
	answer = trimQuotes(answer)
	if answer == "" {
		cfg.OutputDir = defaultDir
	} else {
		cfg.OutputDir = answer
	}
	return nil
}

func (f *Flow) confirm(src *probe.Result) error {
	cfg := f.Cfg
	count := int(math.Ceil(src.Duration() / (cfg.SegmentMinutes * 60)))

	conversion := "None (stream copy)"
	if cfg.ConvertToH264 {
		conversion = "AV1 -> H.264"
	}

	f.printf("\n%s\n", divider)
	f.printf("  File        : %s\n", filepath.Base(cfg.InputPath))
	f.printf("  Duration    : %s\n", display.FormatHHMMSS(src.Duration()))
	f.printf("  Per segment : %v min  ->  %d files\n", cfg.SegmentMinutes, count)
	f.printf("  Conversion  : %s\n", conversion)
	f.printf("  Output      : %s\n", cfg.OutputDir)
	f.printf("  README.txt  : Auto-generated in output folder\n")
	f.printf("%s\n", divider)

	answer, err := f.ask("\nStart processing? (y/n): ")
	if err != nil {
		return err
	}
	if !isYes(answer) {
		f.printf("Cancelled.\n")
		return ErrAborted
	}
	return nil
}

// --- helpers ---

func (f *Flow) printProgress(p splitter.Progress) {
	if p.Message != "" {
		f.printf("%s\n", p.Message)
	}
}

func (f *Flow) printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Out, format, args...)
}

// ask prints the prompt and reads one trimmed line.
func (f *Flow) ask(prompt string) (string, error) {
	fmt.Fprint(f.Out, prompt)
	line, err := f.In.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// trimQuotes removes surrounding quotes left by drag-and-drop paths.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.Trim(s, "'")
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
