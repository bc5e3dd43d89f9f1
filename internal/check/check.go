// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for ffmpeg, ffprobe, and the H.264 encoders.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/bbimams/video-splitter/internal/config"
)

// Sentinel errors returned when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound   = errors.New("'ffmpeg' not found. Install ffmpeg: https://ffmpeg.org/download.html")
	ErrFfprobeNotFound  = errors.New("'ffprobe' not found. Install ffmpeg: https://ffmpeg.org/download.html")
	ErrNvencUnavailable = errors.New("h264_nvenc test encode failed (no usable NVIDIA encoder)")
	ErrX264Unavailable  = errors.New("libx264 test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck. Defined
// here rather than importing the logging package so that check stays
// testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: prints availability of ffmpeg, ffprobe,
// the H.264 encoders, and the AAC encoder. Informational only, it does
// not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkFfmpeg(log)
	checkFfprobe(log)
	checkH264Encoders(log)
	checkEncoder(log, config.EncoderNVENC)
	checkEncoder(log, config.EncoderCPU)
	checkAAC(log)
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

func checkFfprobe(log Logger) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found")
		return
	}
	log.Success("ffprobe found")
}

// checkH264Encoders lists all H.264-related encoders reported by ffmpeg.
func checkH264Encoders(log Logger) {
	log.Info("H.264 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "x264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

func checkEncoder(log Logger, mode config.EncoderMode) {
	name := encoderName(mode)
	log.Info("Testing %s...", name)
	if runSilent("ffmpeg", encoderTestArgs(mode)...) {
		log.Success("%s works", name)
	} else {
		log.Error("%s test encode failed", name)
	}
}

// checkAAC runs a minimal AAC encode to verify the audio encoder works.
func checkAAC(log Logger) {
	log.Info("Testing AAC encoder...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-f", "null", "-",
	) {
		log.Success("AAC encoder works")
	} else {
		log.Error("AAC encoder test failed")
	}
}

// CheckDeps is the pre-run validation: it verifies that ffmpeg and
// ffprobe are on PATH. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// VerifyEncoder runs a short test encode for the chosen encoder mode.
// Called only when a run will actually re-encode; stream-copy runs never
// need a working encoder. Returns a sentinel error on failure.
func VerifyEncoder(mode config.EncoderMode) error {
	if runSilent("ffmpeg", encoderTestArgs(mode)...) {
		return nil
	}
	if mode == config.EncoderCPU {
		return ErrX264Unavailable
	}
	return ErrNvencUnavailable
}

// --- internal helpers ---

func encoderName(mode config.EncoderMode) string {
	if mode == config.EncoderCPU {
		return "libx264"
	}
	return "h264_nvenc"
}

// encoderTestArgs returns the ffmpeg arguments for a minimal test encode
// of a synthetic black frame with the given encoder.
func encoderTestArgs(mode config.EncoderMode) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", encoderName(mode),
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
