package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/bbimams/video-splitter/internal/config"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs a prepared ffmpeg argument slice. When verbose is enabled
// stderr is tee'd to os.Stderr in real time; otherwise it is captured
// silently so failures can be reported after the fact.
func Execute(ctx context.Context, cfg *config.Config, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// IsNotFound reports whether err means the ffmpeg binary is missing from
// PATH rather than a failed run.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// StderrTail returns the last max bytes of captured stderr, trimmed to
// whole lines where possible. ffmpeg puts the decisive message at the
// end of its output.
func StderrTail(stderr string, max int) string {
	s := strings.TrimRight(stderr, "\r\n")
	if len(s) <= max {
		return s
	}
	s = s[len(s)-max:]
	if i := strings.IndexByte(s, '\n'); i >= 0 && i < len(s)-1 {
		s = s[i+1:]
	}
	return s
}
