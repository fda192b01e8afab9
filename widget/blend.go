package widget

import (
	tui "github.com/grindlemire/go-tui"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tempoanim/tempo"
)

// Palette resolves the discrete style identifiers stored on a style blend
// track to concrete go-tui styles.
type Palette map[int]tui.Style

// StyleFor reads id's style blend track at index and blends between the two
// palette styles it names, weighted by the track's eased progress. Missing
// track or missing palette entries fall back to def. The timeline only
// carries the two endpoints and the fraction; the field-by-field blending
// happens here, where the toolkit's style structure is known.
func StyleFor(tl *tempo.Timeline, id tempo.ID, index int, p Palette, def tui.Style) tui.Style {
	in, ok := tl.Get(id, index)
	if !ok {
		return def
	}
	from, ok := p[int(in.Previous)]
	if !ok {
		from = def
	}
	to, ok := p[int(in.Next)]
	if !ok {
		to = def
	}
	return Blend(from, to, in.Percent)
}

// Blend mixes two styles by t in [0, 1]: colors channel-blend through HCL
// space, attributes flip from a's to b's at the halfway point since there
// is no half-bold.
func Blend(a, b tui.Style, t float64) tui.Style {
	attrs := a.Attrs
	if t >= 0.5 {
		attrs = b.Attrs
	}
	return tui.Style{
		Fg:    blendColor(a.Fg, b.Fg, t),
		Bg:    blendColor(a.Bg, b.Bg, t),
		Attrs: attrs,
	}
}

func blendColor(a, b tui.Color, t float64) tui.Color {
	// The terminal's default color has no RGB value to blend with.
	if a.IsDefault() || b.IsDefault() {
		if t < 0.5 {
			return a
		}
		return b
	}
	ar, ag, ab := a.ToRGBValues()
	br, bg, bb := b.ToRGBValues()
	from := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	to := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := from.BlendHcl(to, t).Clamped().RGB255()
	return tui.RGBColor(r, g, bl)
}
