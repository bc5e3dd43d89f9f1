package ffmpeg

import (
	"strconv"

	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/display"
)

// Job describes one clip extraction: the source, the output path, the
// seek offset and clip length in seconds, and whether the video is
// re-encoded to H.264 instead of stream-copied.
type Job struct {
	InputPath  string
	OutputPath string
	Start      float64
	Duration   float64
	Convert    bool
}

// Build constructs the complete ffmpeg argument slice for a job. The seek
// is placed before the input for fast keyframe seeking; the clip length
// uses -t after the input so it counts output time.
func Build(cfg *config.Config, job Job) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info with stats when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Seek and input ---
	args = append(args,
		"-ss", display.FormatHHMMSS(job.Start),
		"-i", job.InputPath,
		"-t", strconv.FormatFloat(job.Duration, 'f', -1, 64),
	)

	// --- Codecs ---
	args = appendCodecs(args, cfg, job)

	// --- Output ---
	args = append(args, job.OutputPath)

	return args
}

// appendCodecs adds the codec-specific section: stream copy by default,
// or an H.264 encode with AAC audio in convert mode.
func appendCodecs(args []string, cfg *config.Config, job Job) []string {
	if !job.Convert {
		// Stream copy at a non-keyframe offset produces negative
		// timestamps in MP4 without this.
		return append(args,
			"-c:v", "copy",
			"-c:a", "copy",
			"-avoid_negative_ts", "make_zero",
		)
	}

	switch cfg.EncoderMode {
	case config.EncoderCPU:
		args = append(args,
			"-c:v", "libx264",
			"-preset", cfg.CpuPreset,
			"-crf", strconv.Itoa(cfg.CpuCRF),
		)
	default:
		args = append(args,
			"-c:v", "h264_nvenc",
			"-preset", cfg.NvencPreset,
			"-cq", strconv.Itoa(cfg.NvencCQ),
		)
	}

	return append(args, "-c:a", "aac", "-b:a", cfg.AudioBitrate)
}
