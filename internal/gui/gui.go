// Package gui implements the graphical front end (--gui): file picker,
// video info panel, split settings, and a live progress log. The split
// itself runs on a worker goroutine and reports through the splitter
// Observer; the Cancel button cancels the run's context.
package gui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/bbimams/video-splitter/internal/check"
	"github.com/bbimams/video-splitter/internal/config"
	"github.com/bbimams/video-splitter/internal/display"
	"github.com/bbimams/video-splitter/internal/naming"
	"github.com/bbimams/video-splitter/internal/probe"
	"github.com/bbimams/video-splitter/internal/splitter"
)

type ui struct {
	cfg *config.Config
	log splitter.Logger
	win fyne.Window

	src     *probe.Result
	srcPath string

	inputEntry   *widget.Entry
	infoCodec    *widget.Label
	infoDuration *widget.Label
	infoRes      *widget.Label
	infoFPS      *widget.Label
	infoBitrate  *widget.Label
	infoAudio    *widget.Label
	infoSize     *widget.Label

	minutesEntry *widget.Entry
	convertCheck *widget.Check
	outputEntry  *widget.Entry

	status   *widget.Label
	progress *widget.ProgressBar
	logView  *widget.Entry

	startBtn  *widget.Button
	cancelBtn *widget.Button

	mu       sync.Mutex
	logLines []string
	cancel   context.CancelFunc
}

// Run opens the main window and blocks until it is closed.
func Run(cfg *config.Config, log splitter.Logger) error {
	a := app.New()
	u := &ui{
		cfg: cfg,
		log: log,
		win: a.NewWindow("Video Splitter"),
	}
	u.build()
	u.win.Resize(fyne.NewSize(620, 640))
	u.win.ShowAndRun()
	return nil
}

func (u *ui) build() {
	u.inputEntry = widget.NewEntry()
	u.inputEntry.Disable()
	browseInput := widget.NewButton("Browse...", u.browseInput)
	inputRow := container.NewBorder(nil, nil, nil, browseInput, u.inputEntry)

	u.infoCodec = widget.NewLabel("-")
	u.infoDuration = widget.NewLabel("-")
	u.infoRes = widget.NewLabel("-")
	u.infoFPS = widget.NewLabel("-")
	u.infoBitrate = widget.NewLabel("-")
	u.infoAudio = widget.NewLabel("-")
	u.infoSize = widget.NewLabel("-")
	infoGrid := container.New(layout.NewFormLayout(),
		widget.NewLabel("Codec:"), u.infoCodec,
		widget.NewLabel("Duration:"), u.infoDuration,
		widget.NewLabel("Resolution:"), u.infoRes,
		widget.NewLabel("FPS:"), u.infoFPS,
		widget.NewLabel("Bitrate:"), u.infoBitrate,
		widget.NewLabel("Audio:"), u.infoAudio,
		widget.NewLabel("File Size:"), u.infoSize,
	)

	u.minutesEntry = widget.NewEntry()
	u.minutesEntry.SetText("10")
	minutesRow := container.NewBorder(nil, nil,
		widget.NewLabel("Segment duration (minutes):"), nil, u.minutesEntry)

	u.convertCheck = widget.NewCheck("Convert AV1 to H.264", nil)
	u.convertCheck.Hide()

	u.outputEntry = widget.NewEntry()
	browseOutput := widget.NewButton("Browse...", u.browseOutput)
	outputRow := container.NewBorder(nil, nil, nil, browseOutput, u.outputEntry)

	u.status = widget.NewLabel("Ready")
	u.progress = widget.NewProgressBar()
	u.logView = widget.NewMultiLineEntry()
	u.logView.Disable()
	u.logView.Wrapping = fyne.TextWrapWord

	u.startBtn = widget.NewButton("Start Splitting", u.startSplit)
	u.startBtn.Disable()
	u.cancelBtn = widget.NewButton("Cancel", u.cancelSplit)
	u.cancelBtn.Disable()
	buttons := container.NewHBox(u.startBtn, u.cancelBtn)

	top := container.NewVBox(
		widget.NewCard("", "Input Video", inputRow),
		widget.NewCard("", "Video Info", infoGrid),
		widget.NewCard("", "Split Settings", container.NewVBox(minutesRow, u.convertCheck)),
		widget.NewCard("", "Output Directory", outputRow),
		u.status,
		u.progress,
	)
	bottom := container.NewVBox(buttons)
	u.win.SetContent(container.NewBorder(top, bottom, nil, nil, u.logView))
}

// --- file browsing ---

func (u *ui) browseInput() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.win)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		u.loadVideo(path)
	}, u.win)
	fd.SetFilter(storage.NewExtensionFileFilter(splitter.Extensions()))
	fd.Show()
}

func (u *ui) browseOutput() {
	dialog.ShowFolderOpen(func(lu fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, u.win)
			return
		}
		if lu == nil {
			return
		}
		u.outputEntry.SetText(lu.Path())
	}, u.win)
}

// loadVideo probes the chosen file and fills the info panel.
func (u *ui) loadVideo(path string) {
	u.status.SetText("Reading video info...")

	src, err := probe.Probe(context.Background(), path)
	if err != nil {
		u.log.Error("%v", err)
		dialog.ShowError(err, u.win)
		u.status.SetText("Ready")
		return
	}

	u.src = src
	u.srcPath = path
	u.inputEntry.SetText(path)

	u.infoCodec.SetText(strings.ToUpper(src.VideoCodec()))
	u.infoDuration.SetText(display.FormatHHMMSS(src.Duration()))
	u.infoRes.SetText(src.Resolution())
	u.infoFPS.SetText(fmt.Sprintf("%v", src.FrameRate()))
	u.infoBitrate.SetText(display.FormatBitrateLabel(src.VideoBitRate() / 1000))
	u.infoAudio.SetText(strings.ToUpper(src.AudioCodec()))
	u.infoSize.SetText(display.FormatSize(src.Format.Size))

	if src.IsAV1() {
		u.convertCheck.SetChecked(true)
		u.convertCheck.Show()
	} else {
		u.convertCheck.SetChecked(false)
		u.convertCheck.Hide()
	}

	u.outputEntry.SetText(naming.DefaultOutputDir(path))
	u.startBtn.Enable()
	u.status.SetText("Ready - video loaded")
}

// --- splitting ---

func (u *ui) validate() (float64, bool) {
	if u.src == nil || u.srcPath == "" {
		dialog.ShowInformation("Invalid Input", "Please select a valid video file.", u.win)
		return 0, false
	}
	minutes, err := strconv.ParseFloat(strings.TrimSpace(u.minutesEntry.Text), 64)
	if err != nil {
		dialog.ShowInformation("Invalid Duration", "Segment duration must be a number.", u.win)
		return 0, false
	}
	if minutes <= 0 {
		dialog.ShowInformation("Invalid Duration", "Segment duration must be greater than 0.", u.win)
		return 0, false
	}
	if minutes*60 >= u.src.Duration() {
		dialog.ShowInformation("Invalid Duration",
			"Segment duration must be less than the total video duration.", u.win)
		return 0, false
	}
	if strings.TrimSpace(u.outputEntry.Text) == "" {
		dialog.ShowInformation("Invalid Output", "Please specify an output directory.", u.win)
		return 0, false
	}
	return minutes, true
}

func (u *ui) startSplit() {
	minutes, ok := u.validate()
	if !ok {
		return
	}

	cfg := u.cfg
	cfg.InputPath = u.srcPath
	cfg.SegmentMinutes = minutes
	cfg.ConvertToH264 = u.src.IsAV1() && u.convertCheck.Checked
	cfg.OutputDir = strings.TrimSpace(u.outputEntry.Text)

	u.startBtn.Disable()
	u.cancelBtn.Enable()
	u.clearLog()
	u.progress.SetValue(0)

	ctx, cancel := context.WithCancel(context.Background())
	u.cancel = cancel

	go u.worker(ctx)
}

func (u *ui) cancelSplit() {
	if u.cancel != nil {
		u.cancel()
	}
	u.status.SetText("Cancelling...")
}

// worker runs the split off the UI goroutine and feeds progress events
// back through handleProgress.
func (u *ui) worker(ctx context.Context) {
	cfg := u.cfg

	if cfg.ConvertToH264 {
		if err := check.VerifyEncoder(cfg.EncoderMode); err != nil {
			u.finish(err)
			return
		}
	}

	r := splitter.NewRunner(cfg, u.log)
	r.Observe = u.handleProgress
	_, err := r.Run(ctx)
	u.finish(err)
}

// handleProgress updates the widgets and mirrors every message to the
// logger, so a --log file captures the run the same way the terminal
// flow does.
func (u *ui) handleProgress(p splitter.Progress) {
	if p.Message != "" {
		u.appendLog(p.Message)
		u.log.Info("%s", p.Message)
	}

	switch p.Stage {
	case splitter.StageRunStart:
		u.status.SetText(p.Message)
	case splitter.StageSegmentStart:
		u.status.SetText(fmt.Sprintf("Processing clip %d of %d...", p.Index+1, p.Total))
	case splitter.StageSegmentDone, splitter.StageSegmentFailed:
		if p.Total > 0 {
			u.progress.SetValue(float64(p.Index+1) / float64(p.Total))
		}
	case splitter.StageRunDone:
		u.progress.SetValue(1)
	}
}

func (u *ui) finish(err error) {
	u.cancelBtn.Disable()
	u.startBtn.Enable()

	switch {
	case err == nil:
		u.status.SetText("Done")
	case errors.Is(err, context.Canceled):
		u.log.Warn("Split cancelled")
		u.status.SetText("Cancelled")
		u.appendLog("Cancelled.")
	default:
		u.log.Error("%v", err)
		u.status.SetText("Failed")
		u.appendLog("Error: " + err.Error())
		dialog.ShowError(err, u.win)
	}
}

// --- log view ---

func (u *ui) appendLog(line string) {
	u.mu.Lock()
	u.logLines = append(u.logLines, line)
	text := strings.Join(u.logLines, "\n")
	u.mu.Unlock()
	u.logView.SetText(text)
}

func (u *ui) clearLog() {
	u.mu.Lock()
	u.logLines = nil
	u.mu.Unlock()
	u.logView.SetText("")
}
