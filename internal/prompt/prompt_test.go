package prompt

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/probe"
	"github.com/bbimams/video-splitter/internal/splitter"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Success(string, ...interface{})     {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Debug(bool, string, ...interface{}) {}

func av1Source() *probe.Result {
	return &probe.Result{
		Format:       probe.FormatInfo{Duration: 930},
		PrimaryVideo: &probe.VideoStream{Codec: "av1", Width: 1920, Height: 1080, AvgFrameRate: "30/1"},
		AudioStreams: []probe.AudioStream{{Codec: "opus"}},
	}
}

func h264Source() *probe.Result {
	return &probe.Result{
		Format:       probe.FormatInfo{Duration: 930},
		PrimaryVideo: &probe.VideoStream{Codec: "h264", Width: 1280, Height: 720, AvgFrameRate: "25/1"},
	}
}

// newTestFlow builds a Flow with scripted stdin, captured stdout, a fake
// probe, and a split stub that records whether it ran.
func newTestFlow(t *testing.T, input string, src *probe.Result) (*Flow, *bytes.Buffer, *bool) {
	t.Helper()

	video := filepath.Join(t.TempDir(), "recording.mkv")
	if err := os.WriteFile(video, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The scripted input refers to the video by placeholder.
	input = strings.ReplaceAll(input, "VIDEO", video)

	cfg := config.DefaultConfig()
	out := &bytes.Buffer{}
	ran := false
	f := &Flow{
		Cfg:    &cfg,
		Log:    nopLogger{},
		In:     bufio.NewReader(strings.NewReader(input)),
		Out:    out,
		Verify: func(config.EncoderMode) error { return nil },
		Probe: func(ctx context.Context, path string) (*probe.Result, error) {
			return src, nil
		},
	}
	f.Split = func(ctx context.Context) (*splitter.RunReport, error) {
		ran = true
		return &splitter.RunReport{Stats: splitter.RunStats{Planned: 2, Completed: 2}}, nil
	}
	return f, out, &ran
}

func TestRun_FullFlow(t *testing.T) {
	f, out, ran := newTestFlow(t, "VIDEO\n10\nn\n\ny\n", av1Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !*ran {
		t.Fatal("split did not run")
	}

	cfg := f.Cfg
	if cfg.SegmentMinutes != 10 {
		t.Errorf("minutes: got %v", cfg.SegmentMinutes)
	}
	if cfg.ConvertToH264 {
		t.Error("answered n: should not convert")
	}
	if filepath.Base(cfg.OutputDir) != "output_split" {
		t.Errorf("default output dir: got %q", cfg.OutputDir)
	}

	s := out.String()
	for _, want := range []string{
		"Codec      : AV1",
		"Resolution : 1920x1080 @ 30 fps",
		"Duration   : 00:15:30  (15.5 min)",
		"Per segment : 10 min  ->  2 files",
		"Conversion  : None (stream copy)",
		"Start processing? (y/n):",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRun_ConvertAccepted(t *testing.T) {
	f, out, ran := newTestFlow(t, "VIDEO\n10\ny\n\ny\n", av1Source())

	verified := false
	f.Verify = func(mode config.EncoderMode) error {
		verified = true
		if mode != config.EncoderNVENC {
			t.Errorf("mode: got %v", mode)
		}
		return nil
	}

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !f.Cfg.ConvertToH264 {
		t.Error("should convert")
	}
	if !verified {
		t.Error("encoder was not verified")
	}
	if !*ran {
		t.Error("split did not run")
	}
	if !strings.Contains(out.String(), "Conversion  : AV1 -> H.264") {
		t.Error("summary should show the conversion")
	}
}

func TestRun_EncoderVerifyFails(t *testing.T) {
	f, _, ran := newTestFlow(t, "VIDEO\n10\ny\n", av1Source())
	verifyErr := errors.New("h264_nvenc test encode failed")
	f.Verify = func(config.EncoderMode) error { return verifyErr }

	err := f.Run(context.Background())
	if !errors.Is(err, verifyErr) {
		t.Fatalf("err: got %v", err)
	}
	if *ran {
		t.Error("split must not run when the encoder is unusable")
	}
}

func TestRun_NoConversionPromptForH264(t *testing.T) {
	// No y/n answer for conversion in the script: the prompt must not
	// appear for a non-AV1 source.
	f, out, ran := newTestFlow(t, "VIDEO\n10\n\ny\n", h264Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !*ran {
		t.Fatal("split did not run")
	}
	if strings.Contains(out.String(), "Convert to H.264?") {
		t.Error("conversion prompt should only appear for AV1")
	}
}

func TestRun_RetryInvalidMinutes(t *testing.T) {
	f, out, _ := newTestFlow(t, "VIDEO\nabc\n0\n99\n10\nn\n\ny\n", av1Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Enter a valid number.") {
		t.Error("missing invalid-number message")
	}
	if !strings.Contains(s, "Must be greater than 0.") {
		t.Error("missing non-positive message")
	}
	if !strings.Contains(s, "Segment duration exceeds video length.") {
		t.Error("missing too-long message")
	}
	if f.Cfg.SegmentMinutes != 10 {
		t.Errorf("minutes: got %v", f.Cfg.SegmentMinutes)
	}
}

func TestRun_RetryMissingFile(t *testing.T) {
	f, out, _ := newTestFlow(t, "/no/such/file.mkv\nVIDEO\n10\nn\n\ny\n", av1Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "File not found: /no/such/file.mkv") {
		t.Error("missing file-not-found message")
	}
}

func TestRun_QuotedPathAccepted(t *testing.T) {
	f, _, ran := newTestFlow(t, "\"VIDEO\"\n10\nn\n\ny\n", av1Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !*ran {
		t.Error("split did not run for a quoted path")
	}
}

func TestRun_CustomOutputDir(t *testing.T) {
	f, _, _ := newTestFlow(t, "VIDEO\n10\nn\n/data/clips\ny\n", av1Source())

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f.Cfg.OutputDir != "/data/clips" {
		t.Errorf("output dir: got %q", f.Cfg.OutputDir)
	}
}

func TestRun_DeclinedConfirmation(t *testing.T) {
	f, out, ran := newTestFlow(t, "VIDEO\n10\nn\n\nn\n", av1Source())

	err := f.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err: got %v, want ErrAborted", err)
	}
	if *ran {
		t.Error("split must not run after a declined confirmation")
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Error("missing cancelled message")
	}
}

func TestRun_ReportsFailedClips(t *testing.T) {
	f, out, _ := newTestFlow(t, "VIDEO\n10\nn\n\ny\n", av1Source())
	f.Split = func(ctx context.Context) (*splitter.RunReport, error) {
		return &splitter.RunReport{Stats: splitter.RunStats{Planned: 2, Completed: 1, Failed: 1}}, nil
	}

	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "1 of 2 clips failed") {
		t.Error("missing failure summary")
	}
}
