// Package storefront wires the banner board, the announcement strip and the
// configuration layer together into the PromoTicker window.
package storefront

import (
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	config "github.com/edward-ap/promoticker/internal/config"
	"github.com/edward-ap/promoticker/internal/marquee"
	ui "github.com/edward-ap/promoticker/internal/ui"
)

const (
	barHeight        = float32(36)
	frameLogPeriod   = 5 * time.Second
	announcementRate = 12 * time.Second
)

// App owns the fyne application, the main window and every scrolling widget.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	frames marquee.FrameSource

	board  *Board
	ticker *ui.TickerController
	ind    *ui.LiveIndicator
	tag    *ui.RotatedLabel

	pauseBtn   *widget.Button
	reverseBtn *widget.Button
	speed      *ui.SpeedSlider

	shortcutCatcher *shortcutCatcher
	stopFrameLog    func()
	closed          bool
}

// Options override configuration values for a single run; they are never
// written back to config.json.
type Options struct {
	// FrameSource is "animation" or "ticker"; empty keeps the configured one.
	FrameSource string
	// DurationScale multiplies every banner duration; 0 keeps them as is.
	DurationScale float64
}

// NewApp loads the configuration, applies opts and builds the window.
func NewApp(opts Options) *App {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config load error:", err)
		cfg = config.Default()
	}

	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	ui.UseStripTheme()
	return newApp(fa, cfg, opts)
}

// newApp builds the window inside an existing fyne app. saved is the
// configuration as loaded; only the window size is written back to it.
func newApp(fa fyne.App, saved *config.Config, opts Options) *App {
	cfg := applyOptions(saved, opts)
	log.Printf("frame source %s, %d banners", cfg.FrameSource, len(cfg.Banners))

	w := fa.NewWindow("PromoTicker")
	w.SetMaster()
	w.SetPadded(false)
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a := &App{
		fa:     fa,
		w:      w,
		config: cfg,
		frames: ui.NewFrameSource(cfg.FrameSource, cfg.TickerInterval()),
	}
	a.buildUI()

	if isDebugFramesEnabled() {
		a.stopFrameLog = a.frames.Subscribe(newFrameMeter(frameLogPeriod).observe)
	}

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		if sz.Width > 0 && sz.Height > 0 {
			saved.WindowW = int(sz.Width)
			saved.WindowH = int(sz.Height)
		}
		if err := saved.Save(); err != nil {
			log.Println("config save error:", err)
		}
		a.Close()
		w.Close()
		fa.Quit()
	})

	w.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		a.handleShortcutKey(ke)
	})
	return a
}

// applyOptions returns a copy of cfg with opts applied, so the close handler
// persists the user's own values rather than one-off overrides.
func applyOptions(cfg *config.Config, opts Options) *config.Config {
	out := *cfg
	out.Banners = append([]config.Banner(nil), cfg.Banners...)
	switch strings.ToLower(strings.TrimSpace(opts.FrameSource)) {
	case config.FrameSourceAnimation:
		out.FrameSource = config.FrameSourceAnimation
	case config.FrameSourceTicker:
		out.FrameSource = config.FrameSourceTicker
	case "":
	default:
		log.Printf("unknown frame source %q, keeping %s", opts.FrameSource, out.FrameSource)
	}
	if opts.DurationScale > 0 {
		for i := range out.Banners {
			ms := int(float64(out.Banners[i].DurationMs) * opts.DurationScale)
			if ms < 1 {
				ms = 1
			}
			out.Banners[i].DurationMs = ms
		}
	}
	return &out
}

// Run enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// Close stops every animation and the announcement rotation. It is safe to
// call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.stopFrameLog != nil {
		a.stopFrameLog()
		a.stopFrameLog = nil
	}
	a.ind.SetActive(false)
	a.ticker.Close()
	a.board.Close()
}

func (a *App) buildUI() {
	a.board = NewBoard(a.config.Banners, a.frames)
	top := a.buildControlBar()

	body := container.NewVScroll(a.board.CanvasObject())
	a.w.SetContent(container.NewBorder(top, nil, nil, nil, body))
	a.ensureShortcutFocus()

	every := a.config.AnnouncementEvery()
	if every <= 0 {
		every = announcementRate
	}
	a.ticker.Rotate(a.config.Announcements, every)
	a.ind.SetActive(true)
}

// buildControlBar constructs the strip with indicator, tag, announcements and
// the playback controls.
func (a *App) buildControlBar() fyne.CanvasObject {
	if a.shortcutCatcher == nil {
		a.shortcutCatcher = newShortcutCatcher(a.handleShortcutKey)
	}
	darkBg := color.NRGBA{0x1a, 0x1a, 0x1a, 0xFF}

	// --- LEFT: indicator + tag ---------------------------------------

	a.ind = ui.NewLiveIndicator(12, a.frames)
	a.tag = ui.NewRotatedTag("PROMO", color.White, color.NRGBA{0xd0, 0x30, 0x30, 0xFF})
	a.tag.SetTargetSize(14, barHeight-4)
	leftBlock := container.NewHBox(a.ind.CanvasObject(), a.tag.CanvasObject())

	// --- CENTER: announcements ---------------------------------------

	a.ticker = ui.NewTickerController(marquee.ScrollConfig{Duration: config.DefaultDurationMs * time.Millisecond, Reverse: true}, a.frames)
	tickerBg := canvas.NewRectangle(color.NRGBA{0x00, 0x99, 0xFF, 0x40})
	centerContent := container.NewStack(tickerBg, container.NewPadded(a.ticker.CanvasObject()))

	// --- RIGHT: reverse, speed, pause --------------------------------

	a.reverseBtn = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		a.reverseAll()
		a.ensureShortcutFocus()
	})
	a.reverseBtn.Importance = widget.LowImportance

	a.speed = ui.NewSpeedSlider(0.25, 4)
	a.speed.OnChanged = func(v float64) {
		a.board.SetSpeed(v)
	}
	speedBox := container.New(
		layout.NewGridWrapLayout(fyne.NewSize(110, a.speed.MinSize().Height)),
		a.speed,
	)

	a.pauseBtn = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), func() {
		a.togglePause()
		a.ensureShortcutFocus()
	})
	a.pauseBtn.Importance = widget.LowImportance

	rightBg := canvas.NewRectangle(darkBg)
	rightBg.SetMinSize(fyne.NewSize(1, barHeight))
	rightBlock := container.NewStack(
		rightBg,
		container.NewPadded(container.NewHBox(a.reverseBtn, container.NewCenter(speedBox), a.pauseBtn)),
	)

	topContent := container.NewBorder(nil, nil, leftBlock, rightBlock, centerContent)

	a.shortcutCatcher.Resize(fyne.NewSize(1, 1))
	a.shortcutCatcher.Move(fyne.NewPos(-5, -5))
	bg := canvas.NewRectangle(darkBg)
	bg.SetMinSize(fyne.NewSize(1, barHeight))
	return container.NewStack(bg, topContent, container.NewPadded(a.shortcutCatcher))
}

// togglePause unmounts or remounts every banner and the indicator.
func (a *App) togglePause() {
	paused := a.board.TogglePaused()
	a.ind.SetActive(!paused)
	if paused {
		a.pauseBtn.SetIcon(theme.MediaPlayIcon())
		log.Println("banners paused")
		return
	}
	a.pauseBtn.SetIcon(theme.MediaPauseIcon())
	log.Println("banners resumed")
}

// reverseAll flips every banner and the announcement strip.
func (a *App) reverseAll() {
	a.board.ReverseAll()
	mq := a.ticker.Marquee()
	mq.SetReverse(!mq.Config().Reverse)
}
