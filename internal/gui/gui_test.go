package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/splitter"
)

type recordLogger struct {
	lines []string
}

func (l *recordLogger) add(level, format string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordLogger) Info(f string, a ...interface{})    { l.add("INFO", f, a...) }
func (l *recordLogger) Success(f string, a ...interface{}) { l.add("OK", f, a...) }
func (l *recordLogger) Warn(f string, a ...interface{})    { l.add("WARN", f, a...) }
func (l *recordLogger) Error(f string, a ...interface{})   { l.add("ERROR", f, a...) }
func (l *recordLogger) Debug(bool, string, ...interface{}) {}

func (l *recordLogger) contains(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func newTestUI(t *testing.T) (*ui, *recordLogger) {
	t.Helper()
	a := test.NewApp()
	cfg := config.DefaultConfig()
	log := &recordLogger{}
	u := &ui{
		cfg: &cfg,
		log: log,
		win: a.NewWindow("test"),
	}
	u.build()
	return u, log
}

func TestHandleProgress_MirrorsToLogger(t *testing.T) {
	u, log := newTestUI(t)

	u.handleProgress(splitter.Progress{
		Stage: splitter.StageSegmentDone, Index: 0, Total: 2,
		Filename: "clip_00-00 - 10-00.mp4",
		Message:  "[1/2] Done: clip_00-00 - 10-00.mp4 (105.0 MB)",
	})

	if !strings.Contains(u.logView.Text, "Done: clip_00-00 - 10-00.mp4") {
		t.Errorf("log view missing message: %q", u.logView.Text)
	}
	if !log.contains("Done: clip_00-00 - 10-00.mp4") {
		t.Errorf("progress message should reach the logger: %v", log.lines)
	}
	if u.progress.Value != 0.5 {
		t.Errorf("progress after 1 of 2: got %v, want 0.5", u.progress.Value)
	}
}

func TestFinish_LogsError(t *testing.T) {
	u, log := newTestUI(t)

	u.finish(errors.New("exit status 1"))

	if u.status.Text != "Failed" {
		t.Errorf("status: got %q", u.status.Text)
	}
	if !log.contains("ERROR exit status 1") {
		t.Errorf("run error should reach the logger: %v", log.lines)
	}
}

func TestFinish_LogsCancellation(t *testing.T) {
	u, log := newTestUI(t)

	u.finish(context.Canceled)

	if u.status.Text != "Cancelled" {
		t.Errorf("status: got %q", u.status.Text)
	}
	if !log.contains("WARN Split cancelled") {
		t.Errorf("cancellation should reach the logger: %v", log.lines)
	}
	if !strings.Contains(u.logView.Text, "Cancelled.") {
		t.Errorf("log view missing cancel line: %q", u.logView.Text)
	}
}
