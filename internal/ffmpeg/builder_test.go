package ffmpeg

import (
	"strings"
	"testing"

	"github.com/bbimams/video-splitter/internal/config"
)

func defaultJob() Job {
	return Job{
		InputPath:  "/media/recording.mkv",
		OutputPath: "/media/output_split/recording_00-00 - 10-00.mp4",
		Start:      600,
		Duration:   330,
	}
}

func argString(args []string) string { return strings.Join(args, " ") }

func TestBuild_CopyMode(t *testing.T) {
	cfg := config.DefaultConfig()
	args := Build(&cfg, defaultJob())

	if args[0] != "ffmpeg" {
		t.Fatalf("args[0]: got %q, want ffmpeg", args[0])
	}
	s := argString(args)

	for _, want := range []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-loglevel error",
		"-ss 00:10:00",
		"-i /media/recording.mkv",
		"-t 330",
		"-c:v copy",
		"-c:a copy",
		"-avoid_negative_ts make_zero",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in: %s", want, s)
		}
	}

	if strings.Contains(s, "h264_nvenc") || strings.Contains(s, "libx264") {
		t.Errorf("copy mode should not encode: %s", s)
	}
	if args[len(args)-1] != "/media/output_split/recording_00-00 - 10-00.mp4" {
		t.Errorf("output must be last arg, got %q", args[len(args)-1])
	}
}

func TestBuild_ConvertNvenc(t *testing.T) {
	cfg := config.DefaultConfig()
	job := defaultJob()
	job.Convert = true

	s := argString(Build(&cfg, job))

	for _, want := range []string{
		"-c:v h264_nvenc",
		"-preset p5",
		"-cq 23",
		"-c:a aac",
		"-b:a 192k",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in: %s", want, s)
		}
	}
	if strings.Contains(s, "-c:v copy") {
		t.Errorf("convert mode should not copy video: %s", s)
	}
	if strings.Contains(s, "-avoid_negative_ts") {
		t.Errorf("re-encode does not need the timestamp fix: %s", s)
	}
}

func TestBuild_ConvertCPU(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EncoderMode = config.EncoderCPU
	job := defaultJob()
	job.Convert = true

	s := argString(Build(&cfg, job))

	for _, want := range []string{
		"-c:v libx264",
		"-preset medium",
		"-crf 23",
		"-c:a aac",
		"-b:a 192k",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in: %s", want, s)
		}
	}
	if strings.Contains(s, "h264_nvenc") {
		t.Errorf("cpu mode should not use nvenc: %s", s)
	}
}

func TestBuild_Verbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true

	s := argString(Build(&cfg, defaultJob()))
	if !strings.Contains(s, "-loglevel info") {
		t.Errorf("verbose should use loglevel info: %s", s)
	}
	if !strings.Contains(s, "-stats") {
		t.Errorf("verbose should enable stats: %s", s)
	}
}

func TestBuild_FractionalDuration(t *testing.T) {
	cfg := config.DefaultConfig()
	job := defaultJob()
	job.Start = 0
	job.Duration = 330.5

	args := Build(&cfg, job)
	found := false
	for i, a := range args {
		if a == "-t" && i+1 < len(args) {
			found = true
			if args[i+1] != "330.5" {
				t.Errorf("-t value: got %q, want 330.5", args[i+1])
			}
		}
	}
	if !found {
		t.Fatal("no -t flag in args")
	}
}

func TestStderrTail(t *testing.T) {
	short := "only line\n"
	if got := StderrTail(short, 500); got != "only line" {
		t.Errorf("short: got %q", got)
	}

	long := strings.Repeat("x", 600) + "\nfinal error line"
	got := StderrTail(long, 100)
	if len(got) > 100 {
		t.Errorf("tail too long: %d bytes", len(got))
	}
	if got != "final error line" {
		t.Errorf("got %q, want trailing line only", got)
	}

	if got := StderrTail("", 100); got != "" {
		t.Errorf("empty: got %q", got)
	}
}
