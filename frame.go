package tempo

import (
	"math"
	"time"

	"github.com/tempoanim/tempo/tween"
)

// Repeat decides whether a chain plays once and settles, or loops forever.
type Repeat int

const (
	// Once plays the chain a single time; past its end every track pins to
	// its final value.
	Once Repeat = iota
	// Forever folds evaluation time back into the chain, looping it.
	Forever
)

// Speed derives a keyframe's position in time from how fast its value
// travels, instead of a fixed offset. Useful with lazy keyframes, where the
// distance to cover is only known once the chain starts.
type Speed struct {
	units float64
	per   time.Duration
}

// PerSecond moves the value by units every second.
func PerSecond(units float64) Speed {
	return Speed{units: units, per: time.Second}
}

// PerMillisecond moves the value by units every millisecond.
func PerMillisecond(units float64) Speed {
	return Speed{units: units, per: time.Millisecond}
}

// travel returns how long covering the distance between two values takes.
func (s Speed) travel(from, to float64) time.Duration {
	return time.Duration(math.Abs(to-from) / s.units * float64(s.per))
}

// Frame is one scheduled change of one property: reach value at the given
// offset after chain start, approaching through ease. A lazy frame inherits
// whatever value is active for its track when the chain starts, falling back
// to its stored value if there is none.
//
// Most code never builds Frames directly; the keyframe builders do. The
// constructors exist for custom widget kinds.
type Frame struct {
	at    time.Duration
	speed *Speed
	value float64
	ease  tween.Tween
	lazy  bool
}

// Eager returns a frame with a known target value.
func Eager(at time.Duration, value float64, ease tween.Tween) Frame {
	if ease == nil {
		ease = tween.Linear
	}
	return Frame{at: at, value: value, ease: ease}
}

// Lazy returns a frame that defers to the value in flight when the chain
// starts, using fallback if its track has never animated.
func Lazy(at time.Duration, fallback float64, ease tween.Tween) Frame {
	f := Eager(at, fallback, ease)
	f.lazy = true
	return f
}

// Chain is one widget's full animation definition: an ordered sequence of
// keyframes, each contributing at most one frame to every track slot of its
// widget kind.
type Chain struct {
	id     ID
	repeat Repeat
	kind   *Kind
	rows   [][]*Frame
}

// NewChain returns an empty chain for id. Link keyframes onto it in
// non-decreasing time order.
func NewChain(id ID) *Chain {
	return &Chain{id: id}
}

// Link appends one keyframe to the chain. All keyframes in a chain must
// share a widget kind; mixing kinds is a programming error and panics.
func (c *Chain) Link(l Linker) *Chain {
	k := l.Keyframe()
	if c.kind == nil {
		c.kind = k.kind
	} else if c.kind != k.kind {
		panic("tempo: chain for " + string(c.id) + " links " + c.kind.name + " and " + k.kind.name + " keyframes")
	}
	c.rows = append(c.rows, k.frames())
	return c
}

// LoopForever marks the chain to repeat until replaced.
func (c *Chain) LoopForever() *Chain {
	c.repeat = Forever
	return c
}

// LoopOnce marks the chain to play a single time. This is the default.
func (c *Chain) LoopOnce() *Chain {
	c.repeat = Once
	return c
}
