package marquee

import (
	"math"
	"testing"
	"time"
)

func TestCloneCount(t *testing.T) {
	tests := []struct {
		name    string
		content float64
		parent  float64
		want    int
	}{
		{name: "three tenths", content: 300, parent: 1000, want: 6},
		{name: "scenario", content: 200, parent: 500, want: 5},
		{name: "exact multiple", content: 250, parent: 1000, want: 6},
		{name: "content wider than viewport", content: 1200, parent: 300, want: 3},
		{name: "unmeasured content", content: 0, parent: 1000, want: 0},
		{name: "unmeasured viewport", content: 300, parent: 0, want: 0},
		{name: "negative content", content: -5, parent: 100, want: 0},
		{name: "NaN content", content: math.NaN(), parent: 100, want: 0},
		{name: "infinite viewport", content: 10, parent: math.Inf(1), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CloneCount(tt.content, tt.parent); got != tt.want {
				t.Fatalf("CloneCount(%v, %v) = %d, want %d", tt.content, tt.parent, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v, w float64
		want float64
	}{
		{name: "inside", v: 10, w: 200, want: 10},
		{name: "negative", v: -50, w: 200, want: 150},
		{name: "far negative", v: -450, w: 200, want: 150},
		{name: "upper bound wraps to zero", v: 200, w: 200, want: 0},
		{name: "tiny negative", v: -1e-18, w: 200, want: 0},
		{name: "NaN value", v: math.NaN(), w: 200, want: 0},
		{name: "zero width", v: 5, w: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.v, tt.w)
			if !approx(got, tt.want, eps) {
				t.Fatalf("Wrap(%v, %v) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
			if tt.w > 0 && (got < 0 || got >= tt.w) {
				t.Fatalf("Wrap(%v, %v) = %v escapes [0, w)", tt.v, tt.w, got)
			}
		})
	}
}

func TestLayoutCoversViewport(t *testing.T) {
	const (
		parent  = 1000.0
		content = 300.0
	)
	count := CloneCount(content, parent)
	if count != 6 {
		t.Fatalf("count = %d, want 6", count)
	}
	for _, off := range []float64{0, 150, 299} {
		l := Layout{Count: count, ContentWidth: content, Offset: off}
		if gap := l.Gap(parent); gap >= 1 {
			t.Fatalf("offset %v leaves a %vpx gap", off, gap)
		}
	}
}

func TestLayoutCoversAtBoundaryRatios(t *testing.T) {
	contents := []float64{1, 3, 99.5, 100, 100.5, 333.33, 999, 1000, 1001, 4000}
	parents := []float64{1, 100, 500, 999.9, 1000, 1920}
	for _, cw := range contents {
		for _, pw := range parents {
			count := CloneCount(cw, pw)
			for _, frac := range []float64{0, 0.25, 0.5, 0.999999} {
				l := Layout{Count: count, ContentWidth: cw, Offset: Wrap(frac*cw, cw)}
				if gap := l.Gap(pw); gap >= 1 {
					t.Fatalf("content %v parent %v offset %v: %vpx gap", cw, pw, l.Offset, gap)
				}
			}
		}
	}
}

func TestLayoutPositions(t *testing.T) {
	l := Layout{Count: 5, ContentWidth: 200, Offset: 150}
	want := []float64{-350, -150, 50, 250, 450}
	got := l.Positions()
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clone %d at %v, want %v", i, got[i], want[i])
		}
	}
	if (Layout{Count: 0, ContentWidth: 200}).Positions() != nil {
		t.Fatal("empty layout should have no positions")
	}
}

func TestLayoutGapDetectsMissingClones(t *testing.T) {
	l := Layout{Count: 2, ContentWidth: 100, Offset: 0}
	if gap := l.Gap(500); !approx(gap, 400, eps) {
		t.Fatalf("gap = %v, want 400", gap)
	}
	if gap := (Layout{}).Gap(300); gap != 300 {
		t.Fatalf("empty layout gap = %v, want 300", gap)
	}
}

func TestScrollConfigNormalize(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{in: 0, want: MinDuration},
		{in: -time.Second, want: MinDuration},
		{in: time.Microsecond, want: MinDuration},
		{in: 4 * time.Second, want: 4 * time.Second},
	}
	for _, tt := range tests {
		got := ScrollConfig{Duration: tt.in, Reverse: true}.Normalize()
		if got.Duration != tt.want || !got.Reverse {
			t.Fatalf("Normalize(%v) = %+v", tt.in, got)
		}
	}
	if s := (ScrollConfig{Duration: 4 * time.Second}).Speed(200); !approx(s, 0.05, eps) {
		t.Fatalf("speed = %v, want 0.05", s)
	}
}

func TestProbeReportsOncePerRender(t *testing.T) {
	var got []float64
	p := NewProbe(func(w float64) { got = append(got, w) })

	for _, w := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if p.Observe(w) {
			t.Fatalf("Observe(%v) reported", w)
		}
	}
	p.Observe(120)
	p.Observe(120)
	p.Observe(120)
	if len(got) != 1 || got[0] != 120 {
		t.Fatalf("reports = %v, want [120]", got)
	}

	// width change during layout, e.g. theme switch
	p.Observe(130)
	if len(got) != 2 || got[1] != 130 {
		t.Fatalf("reports = %v, want [120 130]", got)
	}

	// content swap with identical width still reports
	p.Invalidate()
	if p.Width() != 0 {
		t.Fatalf("Width after Invalidate = %v", p.Width())
	}
	p.Observe(130)
	if len(got) != 3 {
		t.Fatalf("reports = %v, want a third report after Invalidate", got)
	}
	if p.Width() != 130 {
		t.Fatalf("Width = %v, want 130", p.Width())
	}
}
