package tempo

import (
	"time"

	"github.com/tempoanim/tempo/tween"
)

// Track slot indices for the container kind.
const (
	ContainerWidth = iota
	ContainerHeight
	ContainerPaddingTop
	ContainerPaddingRight
	ContainerPaddingBottom
	ContainerPaddingLeft
	ContainerMaxWidth
	ContainerMaxHeight
)

// Track slot indices for the button kind. StyleButton shares them and adds
// the style blend track.
const (
	ButtonWidth = iota
	ButtonHeight
	ButtonPaddingTop
	ButtonPaddingRight
	ButtonPaddingBottom
	ButtonPaddingLeft
	ButtonStyleBlend
)

// Track slot indices for the row and column kinds.
const (
	FlexSpacing = iota
	FlexPaddingTop
	FlexPaddingRight
	FlexPaddingBottom
	FlexPaddingLeft
	FlexWidth
	FlexHeight
)

// Track slot indices for the space kind.
const (
	SpaceWidth = iota
	SpaceHeight
)

// TogglerPercent is the single track of the toggler kind.
const TogglerPercent = 0

// StyleContainerStyleBlend is the style blend track appended to the
// container slots by the style container kind.
const StyleContainerStyleBlend = ContainerMaxHeight + 1

// The built-in widget kinds.
var (
	KindContainer = NewKind("container",
		"width", "height",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"max-width", "max-height")
	KindButton = NewKind("button",
		"width", "height",
		"padding-top", "padding-right", "padding-bottom", "padding-left")
	KindStyleButton = NewKind("style-button",
		"width", "height",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"style-blend")
	KindStyleContainer = NewKind("style-container",
		"width", "height",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"max-width", "max-height",
		"style-blend")
	KindRow = NewKind("row",
		"spacing",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"width", "height")
	KindColumn = NewKind("column",
		"spacing",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"width", "height")
	KindSpace   = NewKind("space", "width", "height")
	KindToggler = NewKind("toggler", "percent")
)

// ContainerKeyframe is the fluent builder for container keyframes.
type ContainerKeyframe struct{ f Keyframe }

// Container starts a container keyframe at the given offset from chain start.
func Container(at time.Duration) ContainerKeyframe {
	return ContainerKeyframe{KindContainer.Frame(at)}
}

// LazyContainer starts a lazy container keyframe; see Kind.LazyFrame.
func LazyContainer(at time.Duration) ContainerKeyframe {
	return ContainerKeyframe{KindContainer.LazyFrame(at)}
}

// Keyframe implements Linker.
func (c ContainerKeyframe) Keyframe() Keyframe { return c.f }

// Width sets the target width.
func (c ContainerKeyframe) Width(w float64) ContainerKeyframe {
	c.f = c.f.Set(ContainerWidth, w)
	return c
}

// Height sets the target height.
func (c ContainerKeyframe) Height(h float64) ContainerKeyframe {
	c.f = c.f.Set(ContainerHeight, h)
	return c
}

// Padding sets all four padding sides to the same target.
func (c ContainerKeyframe) Padding(p float64) ContainerKeyframe {
	return c.PaddingTRBL(p, p, p, p)
}

// PaddingTRBL sets the four padding sides individually.
func (c ContainerKeyframe) PaddingTRBL(top, right, bottom, left float64) ContainerKeyframe {
	c.f = c.f.Set(ContainerPaddingTop, top).
		Set(ContainerPaddingRight, right).
		Set(ContainerPaddingBottom, bottom).
		Set(ContainerPaddingLeft, left)
	return c
}

// MaxWidth sets the target maximum width.
func (c ContainerKeyframe) MaxWidth(w float64) ContainerKeyframe {
	c.f = c.f.Set(ContainerMaxWidth, w)
	return c
}

// MaxHeight sets the target maximum height.
func (c ContainerKeyframe) MaxHeight(h float64) ContainerKeyframe {
	c.f = c.f.Set(ContainerMaxHeight, h)
	return c
}

// Ease selects the easing used to approach this keyframe.
func (c ContainerKeyframe) Ease(e tween.Tween) ContainerKeyframe {
	c.f = c.f.WithEase(e)
	return c
}

// Speed positions this keyframe by value travel speed.
func (c ContainerKeyframe) Speed(s Speed) ContainerKeyframe {
	c.f = c.f.WithSpeed(s)
	return c
}

// ButtonKeyframe is the fluent builder for button keyframes. The style
// variant carries an extra style blend track.
type ButtonKeyframe struct{ f Keyframe }

// Button starts a button keyframe at the given offset from chain start.
func Button(at time.Duration) ButtonKeyframe {
	return ButtonKeyframe{KindButton.Frame(at)}
}

// LazyButton starts a lazy button keyframe.
func LazyButton(at time.Duration) ButtonKeyframe {
	return ButtonKeyframe{KindButton.LazyFrame(at)}
}

// StyleButton starts a style button keyframe, which can additionally blend
// between two discrete styles.
func StyleButton(at time.Duration) ButtonKeyframe {
	return ButtonKeyframe{KindStyleButton.Frame(at)}
}

// LazyStyleButton starts a lazy style button keyframe.
func LazyStyleButton(at time.Duration) ButtonKeyframe {
	return ButtonKeyframe{KindStyleButton.LazyFrame(at)}
}

// Keyframe implements Linker.
func (b ButtonKeyframe) Keyframe() Keyframe { return b.f }

// Width sets the target width.
func (b ButtonKeyframe) Width(w float64) ButtonKeyframe {
	b.f = b.f.Set(ButtonWidth, w)
	return b
}

// Height sets the target height.
func (b ButtonKeyframe) Height(h float64) ButtonKeyframe {
	b.f = b.f.Set(ButtonHeight, h)
	return b
}

// Padding sets all four padding sides to the same target.
func (b ButtonKeyframe) Padding(p float64) ButtonKeyframe {
	return b.PaddingTRBL(p, p, p, p)
}

// PaddingTRBL sets the four padding sides individually.
func (b ButtonKeyframe) PaddingTRBL(top, right, bottom, left float64) ButtonKeyframe {
	b.f = b.f.Set(ButtonPaddingTop, top).
		Set(ButtonPaddingRight, right).
		Set(ButtonPaddingBottom, bottom).
		Set(ButtonPaddingLeft, left)
	return b
}

// Style sets the target style identifier for the blend track. Only valid on
// style button keyframes; the timeline stores the identifier and hands both
// endpoints plus the progress fraction back to the widget adapter, which
// does the actual blending.
func (b ButtonKeyframe) Style(style int) ButtonKeyframe {
	b.f = b.f.Set(ButtonStyleBlend, float64(style))
	return b
}

// Ease selects the easing used to approach this keyframe.
func (b ButtonKeyframe) Ease(e tween.Tween) ButtonKeyframe {
	b.f = b.f.WithEase(e)
	return b
}

// Speed positions this keyframe by value travel speed.
func (b ButtonKeyframe) Speed(s Speed) ButtonKeyframe {
	b.f = b.f.WithSpeed(s)
	return b
}

// StyleContainerKeyframe is the fluent builder for style container
// keyframes: container slots plus a style blend track.
type StyleContainerKeyframe struct{ f Keyframe }

// StyleContainer starts a style container keyframe.
func StyleContainer(at time.Duration) StyleContainerKeyframe {
	return StyleContainerKeyframe{KindStyleContainer.Frame(at)}
}

// LazyStyleContainer starts a lazy style container keyframe.
func LazyStyleContainer(at time.Duration) StyleContainerKeyframe {
	return StyleContainerKeyframe{KindStyleContainer.LazyFrame(at)}
}

// Keyframe implements Linker.
func (c StyleContainerKeyframe) Keyframe() Keyframe { return c.f }

// Width sets the target width.
func (c StyleContainerKeyframe) Width(w float64) StyleContainerKeyframe {
	c.f = c.f.Set(ContainerWidth, w)
	return c
}

// Height sets the target height.
func (c StyleContainerKeyframe) Height(h float64) StyleContainerKeyframe {
	c.f = c.f.Set(ContainerHeight, h)
	return c
}

// Padding sets all four padding sides to the same target.
func (c StyleContainerKeyframe) Padding(p float64) StyleContainerKeyframe {
	c.f = c.f.Set(ContainerPaddingTop, p).
		Set(ContainerPaddingRight, p).
		Set(ContainerPaddingBottom, p).
		Set(ContainerPaddingLeft, p)
	return c
}

// MaxWidth sets the target maximum width.
func (c StyleContainerKeyframe) MaxWidth(w float64) StyleContainerKeyframe {
	c.f = c.f.Set(ContainerMaxWidth, w)
	return c
}

// MaxHeight sets the target maximum height.
func (c StyleContainerKeyframe) MaxHeight(h float64) StyleContainerKeyframe {
	c.f = c.f.Set(ContainerMaxHeight, h)
	return c
}

// Style sets the target style identifier for the blend track.
func (c StyleContainerKeyframe) Style(style int) StyleContainerKeyframe {
	c.f = c.f.Set(StyleContainerStyleBlend, float64(style))
	return c
}

// Ease selects the easing used to approach this keyframe.
func (c StyleContainerKeyframe) Ease(e tween.Tween) StyleContainerKeyframe {
	c.f = c.f.WithEase(e)
	return c
}

// RowKeyframe is the fluent builder for row keyframes.
type RowKeyframe struct{ f Keyframe }

// Row starts a row keyframe at the given offset from chain start.
func Row(at time.Duration) RowKeyframe {
	return RowKeyframe{KindRow.Frame(at)}
}

// LazyRow starts a lazy row keyframe.
func LazyRow(at time.Duration) RowKeyframe {
	return RowKeyframe{KindRow.LazyFrame(at)}
}

// Keyframe implements Linker.
func (r RowKeyframe) Keyframe() Keyframe { return r.f }

// Spacing sets the target gap between children.
func (r RowKeyframe) Spacing(s float64) RowKeyframe {
	r.f = r.f.Set(FlexSpacing, s)
	return r
}

// Padding sets all four padding sides to the same target.
func (r RowKeyframe) Padding(p float64) RowKeyframe {
	r.f = r.f.Set(FlexPaddingTop, p).
		Set(FlexPaddingRight, p).
		Set(FlexPaddingBottom, p).
		Set(FlexPaddingLeft, p)
	return r
}

// Width sets the target width.
func (r RowKeyframe) Width(w float64) RowKeyframe {
	r.f = r.f.Set(FlexWidth, w)
	return r
}

// Height sets the target height.
func (r RowKeyframe) Height(h float64) RowKeyframe {
	r.f = r.f.Set(FlexHeight, h)
	return r
}

// Ease selects the easing used to approach this keyframe.
func (r RowKeyframe) Ease(e tween.Tween) RowKeyframe {
	r.f = r.f.WithEase(e)
	return r
}

// ColumnKeyframe is the fluent builder for column keyframes.
type ColumnKeyframe struct{ f Keyframe }

// Column starts a column keyframe at the given offset from chain start.
func Column(at time.Duration) ColumnKeyframe {
	return ColumnKeyframe{KindColumn.Frame(at)}
}

// LazyColumn starts a lazy column keyframe.
func LazyColumn(at time.Duration) ColumnKeyframe {
	return ColumnKeyframe{KindColumn.LazyFrame(at)}
}

// Keyframe implements Linker.
func (c ColumnKeyframe) Keyframe() Keyframe { return c.f }

// Spacing sets the target gap between children.
func (c ColumnKeyframe) Spacing(s float64) ColumnKeyframe {
	c.f = c.f.Set(FlexSpacing, s)
	return c
}

// Padding sets all four padding sides to the same target.
func (c ColumnKeyframe) Padding(p float64) ColumnKeyframe {
	c.f = c.f.Set(FlexPaddingTop, p).
		Set(FlexPaddingRight, p).
		Set(FlexPaddingBottom, p).
		Set(FlexPaddingLeft, p)
	return c
}

// Width sets the target width.
func (c ColumnKeyframe) Width(w float64) ColumnKeyframe {
	c.f = c.f.Set(FlexWidth, w)
	return c
}

// Height sets the target height.
func (c ColumnKeyframe) Height(h float64) ColumnKeyframe {
	c.f = c.f.Set(FlexHeight, h)
	return c
}

// Ease selects the easing used to approach this keyframe.
func (c ColumnKeyframe) Ease(e tween.Tween) ColumnKeyframe {
	c.f = c.f.WithEase(e)
	return c
}

// SpaceKeyframe is the fluent builder for space keyframes.
type SpaceKeyframe struct{ f Keyframe }

// Space starts a space keyframe at the given offset from chain start.
func Space(at time.Duration) SpaceKeyframe {
	return SpaceKeyframe{KindSpace.Frame(at)}
}

// LazySpace starts a lazy space keyframe.
func LazySpace(at time.Duration) SpaceKeyframe {
	return SpaceKeyframe{KindSpace.LazyFrame(at)}
}

// Keyframe implements Linker.
func (s SpaceKeyframe) Keyframe() Keyframe { return s.f }

// Width sets the target width.
func (s SpaceKeyframe) Width(w float64) SpaceKeyframe {
	s.f = s.f.Set(SpaceWidth, w)
	return s
}

// Height sets the target height.
func (s SpaceKeyframe) Height(h float64) SpaceKeyframe {
	s.f = s.f.Set(SpaceHeight, h)
	return s
}

// Ease selects the easing used to approach this keyframe.
func (s SpaceKeyframe) Ease(e tween.Tween) SpaceKeyframe {
	s.f = s.f.WithEase(e)
	return s
}

// TogglerKeyframe is the fluent builder for toggler keyframes, which animate
// a single percent track the widget maps onto its knob position.
type TogglerKeyframe struct{ f Keyframe }

// Toggler starts a toggler keyframe at the given offset from chain start.
func Toggler(at time.Duration) TogglerKeyframe {
	return TogglerKeyframe{KindToggler.Frame(at)}
}

// LazyToggler starts a lazy toggler keyframe.
func LazyToggler(at time.Duration) TogglerKeyframe {
	return TogglerKeyframe{KindToggler.LazyFrame(at)}
}

// Keyframe implements Linker.
func (t TogglerKeyframe) Keyframe() Keyframe { return t.f }

// Percent sets the target completion fraction, 0 through 1.
func (t TogglerKeyframe) Percent(p float64) TogglerKeyframe {
	t.f = t.f.Set(TogglerPercent, p)
	return t
}

// Ease selects the easing used to approach this keyframe.
func (t TogglerKeyframe) Ease(e tween.Tween) TogglerKeyframe {
	t.f = t.f.WithEase(e)
	return t
}

// Speed positions this keyframe by value travel speed.
func (t TogglerKeyframe) Speed(s Speed) TogglerKeyframe {
	t.f = t.f.WithSpeed(s)
	return t
}
