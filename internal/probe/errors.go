package probe

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind classifies probe failures so callers can tailor their message.
type ErrorKind int

const (
	// KindToolNotFound means the ffprobe binary is not on PATH.
	KindToolNotFound ErrorKind = iota
	// KindExec means ffprobe ran but exited nonzero (unreadable or
	// corrupt file, permission problems).
	KindExec
	// KindParse means ffprobe output could not be parsed, or the parsed
	// result is missing required fields such as the duration.
	KindParse
)

// Error is the failure type returned by Probe. Kind distinguishes a
// missing binary from an ffprobe failure from bad output.
type Error struct {
	Kind   ErrorKind
	Path   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindToolNotFound:
		return "'ffprobe' not found. Install ffmpeg: https://ffmpeg.org/download.html"
	case KindExec:
		if e.Detail != "" {
			return fmt.Sprintf("ffprobe failed for %q: %s", e.Path, e.Detail)
		}
		return fmt.Sprintf("ffprobe failed for %q", e.Path)
	default:
		return fmt.Sprintf("cannot read video info for %q: %s", e.Path, e.Detail)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// classify wraps an ffprobe invocation error into an *Error with the
// right kind. exec.ErrNotFound surfaces wrapped inside *exec.Error.
func classify(path string, err error) *Error {
	if errors.Is(err, exec.ErrNotFound) {
		return &Error{Kind: KindToolNotFound, Path: path, Err: err}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := lastLine(exitErr.Stderr)
		return &Error{Kind: KindExec, Path: path, Detail: detail, Err: err}
	}
	return &Error{Kind: KindExec, Path: path, Detail: err.Error(), Err: err}
}

func lastLine(b []byte) string {
	s := string(b)
	end := len(s)
	for end > 0 && (s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}
	start := end
	for start > 0 && s[start-1] != '\n' {
		start--
	}
	return s[start:end]
}
