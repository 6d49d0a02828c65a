package storefront

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	config "github.com/edward-ap/promoticker/internal/config"
	"github.com/edward-ap/promoticker/internal/marquee"
)

// idleFrames never fires; the board tests only look at mount state and
// configuration.
type idleFrames struct{}

func (idleFrames) Subscribe(marquee.FrameFunc) func() { return func() {} }

func testBanners() []config.Banner {
	return []config.Banner{
		{Text: "Half price", DurationMs: 8000},
		{Text: "Clearance", DurationMs: 4000, Reverse: true},
	}
}

func TestBoardPauseResume(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoard(testBanners(), idleFrames{})
	if b.Len() != 2 {
		t.Fatalf("want 2 banners, got %d", b.Len())
	}

	if !b.TogglePaused() {
		t.Fatal("first toggle should pause")
	}
	for i := 0; i < b.Len(); i++ {
		if b.Marquee(i).Mounted() {
			t.Fatalf("banner %d still mounted while paused", i)
		}
	}
	if b.TogglePaused() {
		t.Fatal("second toggle should resume")
	}
	for i := 0; i < b.Len(); i++ {
		if !b.Marquee(i).Mounted() {
			t.Fatalf("banner %d not remounted", i)
		}
	}
}

func TestBoardReverse(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoard(testBanners(), idleFrames{})

	b.ReverseAll()
	if !b.Marquee(0).Config().Reverse || b.Marquee(1).Config().Reverse {
		t.Fatalf("ReverseAll should flip each banner")
	}
	if b.ToggleReverse(1) != true || !b.Marquee(1).Config().Reverse {
		t.Fatalf("ToggleReverse(1) should restore reverse")
	}
	if b.ToggleReverse(7) {
		t.Fatal("out of range index should be ignored")
	}
}

func TestBoardSpeed(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoard(testBanners(), idleFrames{})

	b.SetSpeed(2)
	if got := b.Marquee(0).Config().Duration; got != 4*time.Second {
		t.Fatalf("banner 0 duration = %v, want 4s", got)
	}
	if got := b.Marquee(1).Config().Duration; got != 2*time.Second {
		t.Fatalf("banner 1 duration = %v, want 2s", got)
	}
	b.SetSpeed(1)
	if got := b.Marquee(0).Config().Duration; got != 8*time.Second {
		t.Fatalf("speed 1 should restore the configured duration, got %v", got)
	}
}

func TestBoardCloseUnmounts(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoard(testBanners(), idleFrames{})
	w := test.NewWindow(b.CanvasObject())
	defer w.Close()
	w.Resize(fyne.NewSize(400, 200))

	b.Close()
	for i := 0; i < b.Len(); i++ {
		if b.Marquee(i).State() != marquee.StateTornDown {
			t.Fatalf("banner %d not torn down", i)
		}
	}
}
