// Package report renders the README.txt summary written next to the
// produced clips: source metadata, split settings, a clip table, and a
// detailed per-clip section.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bbimams/video-splitter/internal/display"
)

// Filename is the report file written into the output directory.
const Filename = "README.txt"

// Source describes the input video as probed before the split.
type Source struct {
	Path             string
	SizeBytes        int64
	Duration         float64
	Width            int
	Height           int
	FrameRate        float64
	PixFmt           string
	VideoCodec       string
	AudioCodec       string
	SampleRate       int
	Channels         int
	ChannelLayout    string
	BitrateKbps      int64
	VideoBitrateKbps int64
	HDR              string // "hdr10" or "sdr"
	Interlaced       bool
}

// Settings describes how the split was performed.
type Settings struct {
	OutputDir      string
	SegmentMinutes float64
	Convert        bool
	EncoderLabel   string
	QualityLabel   string
	PresetLabel    string
}

// Clip is one produced (or failed) output file. Failed clips keep their
// planned filename and timestamps so the report accounts for every
// segment of the plan.
type Clip struct {
	Index       int
	Filename    string
	StartLabel  string
	EndLabel    string
	Duration    float64
	Width       int
	Height      int
	FrameRate   float64
	VideoCodec  string
	AudioCodec  string
	BitrateKbps int64
	SizeBytes   int64
	OK          bool
	ErrDetail   string
}

const (
	div  = "================================================================="
	div2 = "-----------------------------------------------------------------"
)

// Render produces the full README.txt content. now is injected so tests
// get a stable timestamp.
func Render(src Source, set Settings, clips []Clip, now time.Time) string {
	var b strings.Builder
	line := func(format string, a ...interface{}) {
		fmt.Fprintf(&b, format, a...)
		b.WriteByte('\n')
	}

	absOut, err := filepath.Abs(set.OutputDir)
	if err != nil {
		absOut = set.OutputDir
	}

	line(div)
	line("  VIDEO SPLITTER - README")
	line("  Created  : %s", now.Format("2006-01-02 15:04:05"))
	line("  Output   : %s", absOut)
	line(div)
	line("")

	line("[ SOURCE VIDEO ]")
	line(div2)
	line("  File             : %s", filepath.Base(src.Path))
	line("  Path             : %s", src.Path)
	line("  File Size        : %s", display.FormatSize(src.SizeBytes))
	line("  Total Duration   : %s  (%s)", display.DurationLabel(src.Duration), display.FormatHHMMSS(src.Duration))
	line("  Resolution       : %d x %d", src.Width, src.Height)
	line("  Frame Rate       : %v fps", src.FrameRate)
	line("  Pixel Format     : %s", src.PixFmt)
	scan := "Progressive"
	if src.Interlaced {
		scan = "Interlaced"
	}
	line("  Scan Type        : %s", scan)
	line("  Dynamic Range    : %s", strings.ToUpper(src.HDR))
	line("  Video Codec      : %s", strings.ToUpper(src.VideoCodec))
	line("  Audio Codec      : %s", strings.ToUpper(src.AudioCodec))
	line("  Sample Rate      : %d Hz", src.SampleRate)
	line("  Audio Channel    : %d ch  (%s)", src.Channels, src.ChannelLayout)
	line("  Video Bitrate    : %d kbps", src.VideoBitrateKbps)
	line("  Total Bitrate    : %d kbps", src.BitrateKbps)
	line("")

	outVideo := strings.ToUpper(src.VideoCodec)
	outAudio := strings.ToUpper(src.AudioCodec)
	conversion := "None (stream copy, faster)"
	if set.Convert {
		outVideo = set.EncoderLabel
		outAudio = "AAC 192kbps"
		conversion = "AV1 -> H.264 (re-encode)"
	}

	line("[ SPLIT SETTINGS ]")
	line(div2)
	line("  Duration per clip    : %v min", set.SegmentMinutes)
	line("  Number of clips      : %d files", len(clips))
	line("  Conversion           : %s", conversion)
	line("  Output Video Codec   : %s", outVideo)
	line("  Output Audio Codec   : %s", outAudio)
	if set.Convert {
		line("  Quality              : %s", set.QualityLabel)
		line("  Encode Preset        : %s", set.PresetLabel)
	}
	line("")

	line("[ CLIP SUMMARY ]")
	line(div2)
	line("  %-4s %-36s %-14s %-13s %-9s %-9s", "No", "Filename", "Duration", "Resolution", "FPS", "Size")
	line("  %s", strings.Repeat("-", 90))

	var totalSize int64
	for _, c := range clips {
		name := c.Filename
		if len(name) > 36 {
			name = name[:33] + "..."
		}
		res := "?"
		if c.Width > 0 {
			res = fmt.Sprintf("%dx%d", c.Width, c.Height)
		}
		size := display.FormatSize(c.SizeBytes)
		if !c.OK {
			size = "FAILED"
		}
		line("  %-4s %-36s %-14s %-13s %-9s %-9s",
			fmt.Sprintf("%d.", c.Index+1), name,
			display.DurationLabel(c.Duration), res,
			fmt.Sprintf("%v fps", c.FrameRate), size)
		totalSize += c.SizeBytes
	}
	line("  %s", strings.Repeat("-", 90))
	line("  %77s Total : %s", "", display.FormatSize(totalSize))
	line("")

	line("[ DETAILED CLIP INFO ]")
	line(div2)
	for _, c := range clips {
		line("  Clip #%02d  --  %s -> %s", c.Index+1, c.StartLabel, c.EndLabel)
		line("    Filename       : %s", c.Filename)
		line("    Timestamp      : %s -> %s", c.StartLabel, c.EndLabel)
		line("    Duration       : %s  (%s)", display.DurationLabel(c.Duration), display.FormatHHMMSS(c.Duration))
		if !c.OK {
			line("    Status         : FAILED")
			if c.ErrDetail != "" {
				line("    Error          : %s", c.ErrDetail)
			}
			line("")
			continue
		}
		if c.Width > 0 {
			line("    Resolution     : %d x %d", c.Width, c.Height)
		}
		line("    Frame Rate     : %v fps", c.FrameRate)
		line("    Video Codec    : %s", c.VideoCodec)
		line("    Audio Codec    : %s", c.AudioCodec)
		line("    Bitrate        : %d kbps", c.BitrateKbps)
		line("    File Size      : %s", display.FormatSize(c.SizeBytes))
		line("")
	}

	line(div)
	line("  Generated by video-splitter  |  Powered by FFmpeg")
	line(div)

	return b.String()
}

// WriteFile writes the rendered report into dir as README.txt and
// returns the full path.
func WriteFile(dir, content string) (string, error) {
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
