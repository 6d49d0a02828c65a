package marquee

import "sort"

// Track receives clone count and offset updates from the coordinator. The
// fyne renderer in package ui implements it. Implementations must not call
// back into the coordinator from these methods.
type Track interface {
	// SetClones is called whenever either metric changes. count 0 means the
	// track must show nothing.
	SetClones(count int, contentWidth float64)
	// SetOffset is called once per frame with the wrapped offset.
	SetOffset(offset float64)
}

// ClonePosition returns the x position of clone i. The -1 keeps one clone
// just before the viewport start.
func ClonePosition(i int, contentWidth, offset float64) float64 {
	return float64(i-1)*contentWidth - offset
}

// Span is a half open horizontal interval [Start, End).
type Span struct {
	Start, End float64
}

// Layout is a snapshot of the track geometry for one frame.
type Layout struct {
	Count        int
	ContentWidth float64
	Offset       float64
}

// Positions returns the x position of every clone in index order.
func (l Layout) Positions() []float64 {
	if l.Count <= 0 || !validWidth(l.ContentWidth) {
		return nil
	}
	out := make([]float64, l.Count)
	for i := range out {
		out[i] = ClonePosition(i, l.ContentWidth, l.Offset)
	}
	return out
}

// Spans returns the interval each clone occupies.
func (l Layout) Spans() []Span {
	pos := l.Positions()
	out := make([]Span, len(pos))
	for i, x := range pos {
		out[i] = Span{Start: x, End: x + l.ContentWidth}
	}
	return out
}

// Gap returns the widest interval of [0, parentWidth) that no clone covers.
// A fully tiled viewport yields 0.
func (l Layout) Gap(parentWidth float64) float64 {
	if parentWidth <= 0 {
		return 0
	}
	spans := l.Spans()
	if len(spans) == 0 {
		return parentWidth
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var widest float64
	cursor := 0.0
	for _, s := range spans {
		if s.End <= cursor {
			continue
		}
		if s.Start > cursor {
			end := s.Start
			if end > parentWidth {
				end = parentWidth
			}
			if g := end - cursor; g > widest {
				widest = g
			}
		}
		cursor = s.End
		if cursor >= parentWidth {
			return widest
		}
	}
	if g := parentWidth - cursor; g > widest {
		widest = g
	}
	return widest
}
