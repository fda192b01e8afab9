// Package widget binds a tempo timeline to go-tui's widget tree. Each
// helper reads the interpolated tracks for one widget kind and turns them
// into element options; tracks with nothing to report are simply omitted,
// leaving go-tui's own defaults (auto sizing, zero padding) in charge.
//
// Layout values are rounded to whole cells here, at the toolkit edge. The
// timeline itself hands out raw floats, so non-layout consumers (style
// blends, toggler knobs) keep full precision.
package widget

import (
	"math"

	tui "github.com/grindlemire/go-tui"

	"github.com/tempoanim/tempo"
)

func cell(v float64) int {
	return int(math.Round(v))
}

// Apply reapplies options to an already mounted element and marks it dirty,
// for update loops that mutate a retained tree instead of rebuilding it.
func Apply(e *tui.Element, opts ...tui.Option) {
	for _, opt := range opts {
		opt(e)
	}
	e.MarkDirty()
}

// Container returns opts extended with the animated container tracks of id.
func Container(tl *tempo.Timeline, id tempo.ID, opts ...tui.Option) []tui.Option {
	if in, ok := tl.Get(id, tempo.ContainerWidth); ok {
		opts = append(opts, tui.WithWidth(cell(in.Value)))
	}
	if in, ok := tl.Get(id, tempo.ContainerHeight); ok {
		opts = append(opts, tui.WithHeight(cell(in.Value)))
	}
	if p, ok := padding(tl, id, tempo.ContainerPaddingTop); ok {
		opts = append(opts, p)
	}
	if in, ok := tl.Get(id, tempo.ContainerMaxWidth); ok {
		opts = append(opts, tui.WithMaxWidth(cell(in.Value)))
	}
	if in, ok := tl.Get(id, tempo.ContainerMaxHeight); ok {
		opts = append(opts, tui.WithMaxHeight(cell(in.Value)))
	}
	return opts
}

// Button returns opts extended with the animated button tracks of id. The
// style blend track is read separately through StyleFor.
func Button(tl *tempo.Timeline, id tempo.ID, opts ...tui.Option) []tui.Option {
	if in, ok := tl.Get(id, tempo.ButtonWidth); ok {
		opts = append(opts, tui.WithWidth(cell(in.Value)))
	}
	if in, ok := tl.Get(id, tempo.ButtonHeight); ok {
		opts = append(opts, tui.WithHeight(cell(in.Value)))
	}
	if p, ok := padding(tl, id, tempo.ButtonPaddingTop); ok {
		opts = append(opts, p)
	}
	return opts
}

// Row returns opts extended with the animated row tracks of id, laying
// children out along the main axis.
func Row(tl *tempo.Timeline, id tempo.ID, opts ...tui.Option) []tui.Option {
	return flex(tl, id, tui.Row, opts)
}

// Column is Row for the vertical axis.
func Column(tl *tempo.Timeline, id tempo.ID, opts ...tui.Option) []tui.Option {
	return flex(tl, id, tui.Column, opts)
}

func flex(tl *tempo.Timeline, id tempo.ID, dir tui.Direction, opts []tui.Option) []tui.Option {
	opts = append(opts, tui.WithDirection(dir))
	if in, ok := tl.Get(id, tempo.FlexSpacing); ok {
		opts = append(opts, tui.WithGap(cell(in.Value)))
	}
	if p, ok := padding(tl, id, tempo.FlexPaddingTop); ok {
		opts = append(opts, p)
	}
	if in, ok := tl.Get(id, tempo.FlexWidth); ok {
		opts = append(opts, tui.WithWidth(cell(in.Value)))
	}
	if in, ok := tl.Get(id, tempo.FlexHeight); ok {
		opts = append(opts, tui.WithHeight(cell(in.Value)))
	}
	return opts
}

// Space returns opts for an animated spacer element.
func Space(tl *tempo.Timeline, id tempo.ID, opts ...tui.Option) []tui.Option {
	if in, ok := tl.Get(id, tempo.SpaceWidth); ok {
		opts = append(opts, tui.WithWidth(cell(in.Value)))
	}
	if in, ok := tl.Get(id, tempo.SpaceHeight); ok {
		opts = append(opts, tui.WithHeight(cell(in.Value)))
	}
	return opts
}

// Percent reads a single-track percent animation (toggler and friends),
// returning def when the track has nothing to report.
func Percent(tl *tempo.Timeline, id tempo.ID, def float64) float64 {
	if in, ok := tl.Get(id, tempo.TogglerPercent); ok {
		return in.Value
	}
	return def
}

// padding gathers the four padding tracks starting at the top index.
// Sides that are not animating default to zero, matching the stock widgets.
func padding(tl *tempo.Timeline, id tempo.ID, top int) (tui.Option, bool) {
	var sides [4]int
	any := false
	for i := range sides {
		if in, ok := tl.Get(id, top+i); ok {
			sides[i] = cell(in.Value)
			any = true
		}
	}
	if !any {
		return nil, false
	}
	return tui.WithPaddingTRBL(sides[0], sides[1], sides[2], sides[3]), true
}
