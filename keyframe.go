package tempo

import (
	"time"

	"github.com/tempoanim/tempo/tween"
)

// Kind describes the animatable slot layout of one widget kind: a fixed,
// ordered list of track names. The built-in kinds cover the stock widgets;
// custom widgets declare their own Kind and read tracks back by index.
type Kind struct {
	name  string
	slots []string
}

// NewKind declares a widget kind with the given track slots, in track-index
// order.
func NewKind(name string, slots ...string) *Kind {
	return &Kind{name: name, slots: slots}
}

// Name returns the kind's name.
func (k *Kind) Name() string { return k.name }

// Tracks returns the number of track slots.
func (k *Kind) Tracks() int { return len(k.slots) }

// Frame starts an eager keyframe of this kind at the given offset from
// chain start.
func (k *Kind) Frame(at time.Duration) Keyframe {
	return Keyframe{
		kind:   k,
		at:     at,
		ease:   tween.Linear,
		set:    make([]bool, len(k.slots)),
		values: make([]float64, len(k.slots)),
	}
}

// LazyFrame starts a lazy keyframe: every slot inherits the value in flight
// when the chain starts, so a new chain continues from wherever the old one
// was instead of snapping. Values set on a lazy keyframe become fallbacks
// for tracks that have never animated.
func (k *Kind) LazyFrame(at time.Duration) Keyframe {
	f := k.Frame(at)
	f.lazy = true
	return f
}

// Keyframe is a single named point in time within a chain, holding optional
// target values per track slot and one easing applied to everything set at
// this point.
type Keyframe struct {
	kind   *Kind
	at     time.Duration
	speed  *Speed
	ease   tween.Tween
	lazy   bool
	set    []bool
	values []float64
}

// Set records a target value for one track slot.
func (f Keyframe) Set(slot int, value float64) Keyframe {
	f = f.clone()
	f.set[slot] = true
	f.values[slot] = value
	return f
}

// WithEase selects the easing used to approach this keyframe.
func (f Keyframe) WithEase(e tween.Tween) Keyframe {
	if e == nil {
		e = tween.Linear
	}
	f.ease = e
	return f
}

// WithSpeed positions this keyframe by value travel speed instead of a
// fixed offset. The offset is resolved per track against the previous frame
// in that track once the chain starts.
func (f Keyframe) WithSpeed(s Speed) Keyframe {
	f.speed = &s
	return f
}

// Keyframe lets a raw Keyframe stand directly as a chain link.
func (f Keyframe) Keyframe() Keyframe { return f }

// Linker is anything that can stand as one keyframe in a chain; the kind
// builders and Keyframe itself all qualify.
type Linker interface {
	Keyframe() Keyframe
}

func (f Keyframe) clone() Keyframe {
	set := make([]bool, len(f.set))
	copy(set, f.set)
	values := make([]float64, len(f.values))
	copy(values, f.values)
	f.set = set
	f.values = values
	return f
}

// frames derives one optional frame per track slot. Eager keyframes emit a
// frame only for slots that were set; lazy keyframes emit a bridging lazy
// frame for every slot.
func (f Keyframe) frames() []*Frame {
	out := make([]*Frame, len(f.kind.slots))
	for i := range f.kind.slots {
		if !f.lazy && !f.set[i] {
			continue
		}
		fr := Frame{at: f.at, speed: f.speed, value: f.values[i], ease: f.ease, lazy: f.lazy}
		out[i] = &fr
	}
	return out
}
