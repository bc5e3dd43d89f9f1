// Command video-splitter splits one video into fixed-length clips via
// ffmpeg, with an optional AV1 to H.264 re-encode and a README report.
//
// It parses flags, runs system diagnostics (--check) when asked, and
// otherwise starts the interactive prompt flow or the GUI (--gui).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bbimams/video-splitter/internal/check"
	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/display"
	"github.com/bbimams/video-splitter/internal/gui"
	"github.com/bbimams/video-splitter/internal/logging"
	"github.com/bbimams/video-splitter/internal/prompt"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "video-splitter: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "video-splitter: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "video-splitter: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// Fail fast if ffmpeg/ffprobe are not installed. The convert-mode
	// encoder is verified later, only when a run will actually encode.
	if err := check.CheckDeps(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	if cfg.GUIMode {
		if err := gui.Run(&cfg, log); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	display.PrintBanner()
	log.Info("video-splitter v%s (%s)", version, commit)

	// Phase 2: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// the run stops between segments without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping...")
		cancel()
	}()

	// Phase 3: Interactive flow (ask -> confirm -> split -> report).
	flow := prompt.New(&cfg, log)
	if err := flow.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return 0
		}
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("%v", err)
		return 1
	}
	return 0
}
