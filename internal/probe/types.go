package probe

import (
	"strconv"
	"strings"
)

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
	Tags       map[string]string
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index          int
	Codec          string
	Profile        string
	PixFmt         string
	Width          int
	Height         int
	BitRate        int64
	Duration       float64
	FieldOrder     string
	ColorTransfer  string
	ColorPrimaries string
	IsAttachedPic  bool
	AvgFrameRate   string
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index         int
	Codec         string
	Channels      int
	ChannelLayout string
	SampleRate    int
	BitRate       int64
	Language      string
	IsDefault     bool
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
// A Result is immutable once built; one probe serves an entire run.
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// Duration returns the container duration in seconds, falling back to the
// primary video stream's duration when the format-level value is missing
// (some containers only report it per stream).
func (r *Result) Duration() float64 {
	if r.Format.Duration > 0 {
		return r.Format.Duration
	}
	if r.PrimaryVideo != nil && r.PrimaryVideo.Duration > 0 {
		return r.PrimaryVideo.Duration
	}
	return 0
}

// VideoCodec returns the lowercase primary video codec name, or "unknown".
func (r *Result) VideoCodec() string {
	if r.PrimaryVideo == nil || r.PrimaryVideo.Codec == "" {
		return "unknown"
	}
	return strings.ToLower(r.PrimaryVideo.Codec)
}

// AudioCodec returns the lowercase codec name of the first audio stream,
// or "unknown" when the file has no audio.
func (r *Result) AudioCodec() string {
	if len(r.AudioStreams) == 0 || r.AudioStreams[0].Codec == "" {
		return "unknown"
	}
	return strings.ToLower(r.AudioStreams[0].Codec)
}

// HasAudio reports whether the file carries at least one audio stream.
func (r *Result) HasAudio() bool { return len(r.AudioStreams) > 0 }

// IsAV1 reports whether the primary video stream is AV1-encoded. Convert
// mode is only offered for AV1 sources.
func (r *Result) IsAV1() bool { return r.VideoCodec() == "av1" }

// VideoBitRate returns the primary video stream bitrate in bits/sec,
// falling back to the format-level bitrate when the stream value is
// unavailable or zero.
func (r *Result) VideoBitRate() int64 {
	if r.PrimaryVideo != nil && r.PrimaryVideo.BitRate > 0 {
		return r.PrimaryVideo.BitRate
	}
	return r.Format.BitRate
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (r *Result) Resolution() string {
	if r.PrimaryVideo == nil || r.PrimaryVideo.Width <= 0 || r.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(r.PrimaryVideo.Width) + "x" + strconv.Itoa(r.PrimaryVideo.Height)
}

// FrameRate returns the primary video stream's average frame rate rounded
// to two decimals, parsing ffprobe's rational "30000/1001" form. Returns 0
// when the rate is missing or malformed.
func (r *Result) FrameRate() float64 {
	if r.PrimaryVideo == nil {
		return 0
	}
	return parseFrameRate(r.PrimaryVideo.AvgFrameRate)
}

func parseFrameRate(rate string) float64 {
	num, den, ok := strings.Cut(strings.TrimSpace(rate), "/")
	if !ok {
		den = "1"
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return float64(int(n/d*100+0.5)) / 100
}
