// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Run parameters (input file, segment length, conversion
// choice, output directory) are collected interactively by the front ends
// and stored here alongside the flag-driven settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Enum types for validated string fields ---

// EncoderMode selects the H.264 encoder used in convert mode.
type EncoderMode string

const (
	EncoderNVENC EncoderMode = "nvenc" // Hardware encoding via h264_nvenc (default).
	EncoderCPU   EncoderMode = "cpu"   // Software encoding via libx264.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by [ParseFlags], and then completed by the prompt flow or the GUI
// before a run starts. Fields are grouped by concern with inline
// documentation of defaults and fixed values.
type Config struct {
	// Run parameters (set by the front ends, not by flags).
	InputPath      string
	SegmentMinutes float64
	ConvertToH264  bool // Only meaningful for AV1 sources.
	OutputDir      string

	// Encoder settings (convert mode only).
	EncoderMode  EncoderMode // Default: "nvenc". Overridden by --encoder.
	NvencPreset  string      // Default: "p5".
	NvencCQ      int         // Default: 23.
	CpuPreset    string      // Default: "medium".
	CpuCRF       int         // Default: 23.
	AudioBitrate string      // Fixed default: "192k" (AAC).

	// Display and logging.
	GUIMode   bool      // Launch the graphical front end.
	Verbose   bool      // Tee ffmpeg stderr and show live stats.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// video_splitter.py behavior (h264_nvenc p5/cq23, AAC 192k).
func DefaultConfig() Config {
	return Config{
		EncoderMode:  EncoderNVENC,
		NvencPreset:  "p5",
		NvencCQ:      23,
		CpuPreset:    "medium",
		CpuCRF:       23,
		AudioBitrate: "192k",
		ColorMode:    ColorAuto,
	}
}

// Validate checks the flag-driven fields (enum values). Called right after
// flag parsing, before any run parameters exist.
func (c *Config) Validate() error {
	switch c.EncoderMode {
	case EncoderNVENC, EncoderCPU:
		// valid
	default:
		return errors.New("invalid encoder (use 'nvenc' or 'cpu')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}

// ValidateRun checks the run parameters collected by a front end. Any
// failure here aborts before a single process is invoked.
func (c *Config) ValidateRun() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return errors.New("input file path must not be empty")
	}
	fi, err := os.Stat(c.InputPath)
	if err != nil {
		return fmt.Errorf("input file not found: %s", c.InputPath)
	}
	if fi.IsDir() {
		return fmt.Errorf("input path is a directory: %s", c.InputPath)
	}
	if c.SegmentMinutes <= 0 {
		return errors.New("segment duration must be greater than zero")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// EncoderLabel returns the human-readable name of the active convert-mode
// encoder, e.g. "H.264 (h264_nvenc)".
func (c *Config) EncoderLabel() string {
	if c.EncoderMode == EncoderCPU {
		return "H.264 (libx264)"
	}
	return "H.264 (h264_nvenc)"
}
