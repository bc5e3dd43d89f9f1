package config

// This file implements CLI flag parsing and help text. The user-facing flag
// surface is deliberately small: everything that describes a run (input
// file, segment length, conversion, output directory) is asked for
// interactively; flags only select the front end and tune diagnostics.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. Returns non-nil on unknown flags or bad values; version is shown
// in the usage header.
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("video-splitter", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var showVersion, showHelp, forceColor, noColor bool

	fs.BoolVar(&cfg.GUIMode, "gui", false, "Launch the graphical front end")
	fs.BoolVar(&cfg.GUIMode, "g", false, "Same as --gui")
	fs.Var(&encoderModeValue{&cfg.EncoderMode}, "encoder", "Convert-mode H.264 encoder: nvenc | cpu")
	fs.Var(&encoderModeValue{&cfg.EncoderMode}, "e", "Same as --encoder")

	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Show live ffmpeg output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	if showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "video-splitter v"+version)
		os.Exit(0)
	}

	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected argument %q (the input file is asked for interactively)", fs.Args()[0])
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 26
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Video Splitter v" + version + " — split long videos into clips with FFmpeg"},
		{"", ""},
		{"  video-splitter [OPTIONS]", ""},
		{"", ""},
		{"Mode", ""},
		{"  -g, --gui", "Launch the graphical front end"},
		{"  -e, --encoder <nvenc|cpu>", "Convert-mode H.264 encoder (default: nvenc)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Show live ffmpeg output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, encoders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the EncoderMode enum can be used with flag.Var.

type encoderModeValue struct{ p *EncoderMode }

func (e *encoderModeValue) String() string {
	if e.p == nil {
		return ""
	}
	return string(*e.p)
}

func (e *encoderModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "nvenc":
		*e.p = EncoderNVENC
	case "cpu":
		*e.p = EncoderCPU
	default:
		return fmt.Errorf("invalid encoder %q (use 'nvenc' or 'cpu')", s)
	}
	return nil
}
