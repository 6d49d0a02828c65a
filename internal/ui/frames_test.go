package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/edward-ap/promoticker/internal/marquee"
)

func TestNewFrameSourceKind(t *testing.T) {
	test.NewTempApp(t)
	tests := []struct {
		name   string
		kind   string
		ticker bool
	}{
		{name: "ticker", kind: FrameSourceTicker, ticker: true},
		{name: "ticker with noise", kind: "  Ticker ", ticker: true},
		{name: "animation", kind: FrameSourceAnimation, ticker: false},
		{name: "unknown falls back to animation", kind: "vsync", ticker: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isTicker := NewFrameSource(tt.kind, time.Millisecond).(*marquee.TickerSource)
			if isTicker != tt.ticker {
				t.Fatalf("NewFrameSource(%q) ticker = %v, want %v", tt.kind, isTicker, tt.ticker)
			}
		})
	}
}

func TestTickerFrameSourceDelivers(t *testing.T) {
	src := NewFrameSource(FrameSourceTicker, time.Millisecond)
	got := make(chan time.Duration, 1)
	cancel := src.Subscribe(func(elapsed time.Duration) {
		select {
		case got <- elapsed:
		default:
		}
	})
	select {
	case elapsed := <-got:
		if elapsed < 0 {
			t.Fatalf("negative elapsed %v", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
	cancel()
}

func TestClampFloat64(t *testing.T) {
	tests := []struct {
		name           string
		v, min, max float64
		want        float64
	}{
		{name: "inside", v: 2, min: 1, max: 3, want: 2},
		{name: "below", v: 0, min: 1, max: 3, want: 1},
		{name: "above", v: 5, min: 1, max: 3, want: 3},
		{name: "empty range", v: 5, min: 3, max: 3, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampFloat64(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}
