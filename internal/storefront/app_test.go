package storefront

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	config "github.com/edward-ap/promoticker/internal/config"
	ui "github.com/edward-ap/promoticker/internal/ui"
)

func testConfig() *config.Config {
	return &config.Config{
		WindowW:             600,
		WindowH:             200,
		FrameSource:         config.FrameSourceTicker,
		TickerIntervalMs:    config.DefaultTickerIntervalMs,
		Banners:             testBanners(),
		Announcements:       []string{"Open late"},
		AnnouncementEveryMs: config.DefaultAnnouncementEveryMs,
	}
}

func TestShortcuts(t *testing.T) {
	fa := test.NewTempApp(t)
	a := newApp(fa, testConfig(), Options{})
	defer a.Close()

	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	if !a.board.Paused() || a.ind.Active() {
		t.Fatal("space should pause the banners and the indicator")
	}
	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	if a.board.Paused() || !a.ind.Active() {
		t.Fatal("space should resume")
	}

	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.KeyR})
	if !a.board.Marquee(0).Config().Reverse || a.board.Marquee(1).Config().Reverse {
		t.Fatal("R should flip every banner")
	}
	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.Key2})
	if !a.board.Marquee(1).Config().Reverse {
		t.Fatal("2 should flip the second banner")
	}

	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	want := ui.ScaledDuration(8*time.Second, 1.25)
	if got := a.board.Marquee(0).Config().Duration; got != want {
		t.Fatalf("up: duration = %v, want %v", got, want)
	}
	a.handleShortcutKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if got := a.board.Marquee(0).Config().Duration; got != 8*time.Second {
		t.Fatalf("down: duration = %v, want 8s", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	fa := test.NewTempApp(t)
	a := newApp(fa, testConfig(), Options{})
	a.Close()
	a.Close()
	if a.ind.Active() {
		t.Fatal("indicator still running after close")
	}
	if !a.board.Paused() {
		t.Fatal("board still running after close")
	}
}

func TestKeyToBannerIndex(t *testing.T) {
	tests := []struct {
		key  fyne.KeyName
		want int
	}{
		{fyne.Key1, 0},
		{fyne.Key9, 8},
		{fyne.Key0, -1},
		{fyne.KeyA, -1},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := keyToBannerIndex(tt.key); got != tt.want {
				t.Fatalf("keyToBannerIndex(%s) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestFrameMeter(t *testing.T) {
	var lines []string
	m := newFrameMeter(time.Second)
	m.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	for i := 0; i < 59; i++ {
		m.observe(16 * time.Millisecond)
	}
	if len(lines) != 0 {
		t.Fatalf("logged before the period elapsed: %q", lines)
	}
	for i := 0; i < 5; i++ {
		m.observe(16 * time.Millisecond)
	}
	if len(lines) != 1 {
		t.Fatalf("want one report, got %q", lines)
	}
	if m.frames != 0 || m.elapsed != 0 {
		t.Fatal("meter not reset after reporting")
	}
}

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantSource string
		wantMs     []int
	}{
		{name: "no overrides", opts: Options{}, wantSource: config.FrameSourceTicker, wantMs: []int{8000, 4000}},
		{name: "animation", opts: Options{FrameSource: " Animation "}, wantSource: config.FrameSourceAnimation, wantMs: []int{8000, 4000}},
		{name: "unknown source kept", opts: Options{FrameSource: "vsync"}, wantSource: config.FrameSourceTicker, wantMs: []int{8000, 4000}},
		{name: "half duration", opts: Options{DurationScale: 0.5}, wantSource: config.FrameSourceTicker, wantMs: []int{4000, 2000}},
		{name: "tiny scale floors at 1ms", opts: Options{DurationScale: 1e-9}, wantSource: config.FrameSourceTicker, wantMs: []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := testConfig()
			got := applyOptions(saved, tt.opts)
			if got.FrameSource != tt.wantSource {
				t.Fatalf("FrameSource = %q, want %q", got.FrameSource, tt.wantSource)
			}
			for i, ms := range tt.wantMs {
				if got.Banners[i].DurationMs != ms {
					t.Fatalf("banner %d DurationMs = %d, want %d", i, got.Banners[i].DurationMs, ms)
				}
			}
			if saved.FrameSource != config.FrameSourceTicker || saved.Banners[0].DurationMs != 8000 {
				t.Fatal("overrides leaked into the saved config")
			}
		})
	}
}
