package tempo

import (
	"time"

	"github.com/tempoanim/tempo/tween"
)

// FrameInterval is the redraw cadence an application should drive while
// Animating reports true. Coarse and fixed on purpose: the timeline asks to
// be woken periodically, not per animation.
const FrameInterval = 33 * time.Millisecond

// Meta is the per-ID bookkeeping for a committed chain.
type Meta struct {
	// Repeat decides whether evaluation time folds back into the chain.
	Repeat Repeat
	// Start is the instant the chain was anchored at.
	Start time.Time
	// End is the latest frame instant across all tracks.
	End time.Time
	// Length is End minus Start.
	Length time.Duration

	pause pauseState
}

// Playing reports whether the chain is currently advancing.
func (m *Meta) Playing() bool {
	return m.pause.mode != pausedMode
}

const (
	runningMode = iota
	pausedMode
	resumedMode
)

// pauseState tracks whether a chain is paused, has never been paused, or
// has been resumed with an accumulated offset.
type pauseState struct {
	mode int
	// at is the folded instant the chain was paused at (pausedMode).
	at time.Time
	// delay is the span the chain spent paused (resumedMode).
	delay time.Duration
}

func (m *Meta) pauseAt(now time.Time) {
	if m.pause.mode == resumedMode {
		now = now.Add(-m.pause.delay)
	}
	m.pause = pauseState{mode: pausedMode, at: m.fold(now)}
}

func (m *Meta) resumeAt(now time.Time) {
	if m.pause.mode != pausedMode {
		return
	}
	m.pause = pauseState{mode: resumedMode, delay: now.Sub(m.pause.at)}
}

// relative maps a wall-clock instant to the instant the chain should be
// evaluated at, accounting for pauses and loop folding.
func (m *Meta) relative(now time.Time) time.Time {
	switch m.pause.mode {
	case pausedMode:
		return m.fold(m.pause.at)
	case resumedMode:
		return m.fold(now.Add(-m.pause.delay))
	default:
		return m.fold(now)
	}
}

// fold maps now back into the first loop iteration of a forever chain.
// Duration arithmetic here overflows only after the animation has been
// running for centuries; that is not a state worth recovering from.
func (m *Meta) fold(now time.Time) time.Time {
	if m.Repeat != Forever || m.Length <= 0 {
		return now
	}
	elapsed := now.Sub(m.Start)
	if elapsed < 0 {
		return now
	}
	return now.Add(-(elapsed / m.Length) * m.Length)
}

// Interped is an interpolated read of one track at one instant. Value is
// the eased scalar; Previous and Next are the raw surrounding frame values
// and Percent the eased progress between them, for consumers (style blends)
// that interpolate something richer than a scalar themselves.
type Interped struct {
	Previous float64
	Next     float64
	Value    float64
	Percent  float64
}

// subframe is a frame anchored to an absolute instant by Start or StartAt.
type subframe struct {
	at    time.Time
	value float64
	ease  tween.Tween
}

type track struct {
	meta  Meta
	lanes [][]subframe
}

const (
	opChain = iota
	opPause
	opResume
	opPauseAll
	opResumeAll
)

type pendingOp struct {
	op     int
	id     ID
	repeat Repeat
	rows   [][]*Frame
	paused bool
}

// Timeline holds every animation: committed chains keyed by ID, and pending
// chains waiting for Start. One Timeline per animatable surface, owned and
// driven by a single goroutine; there is no internal locking.
type Timeline struct {
	tracks   map[ID]*track
	pendings []pendingOp
	now      time.Time
	hasNow   bool
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{tracks: make(map[ID]*track)}
}

// Now caches the evaluation instant used by Get and Animating. Call it once
// per update with the instant from your redraw tick so every read in the
// following view pass sees the same time.
func (t *Timeline) Now(now time.Time) {
	t.now = now
	t.hasNow = true
}

func (t *Timeline) getNow() time.Time {
	if t.hasNow {
		return t.now
	}
	return time.Now()
}

// SetChain queues a chain. Nothing animates until Start commits the queue;
// calls chain so several animations can be queued and then anchored to the
// same instant:
//
//	tl.SetChain(a).SetChain(b).Start()
//
// Starting a chain for an ID that is already animating replaces the old
// chain wholesale. Begin the new chain with a lazy keyframe if it should
// continue from the old one's position.
func (t *Timeline) SetChain(c *Chain) *Timeline {
	return t.setChain(c, false)
}

// SetChainPaused queues a chain that will start frozen on its first frame.
func (t *Timeline) SetChainPaused(c *Chain) *Timeline {
	return t.setChain(c, true)
}

func (t *Timeline) setChain(c *Chain, paused bool) *Timeline {
	t.pendings = append(t.pendings, pendingOp{
		op:     opChain,
		id:     c.id,
		repeat: c.repeat,
		rows:   c.rows,
		paused: paused,
	})
	return t
}

// Pause queues a pause for id, committed by the next Start.
func (t *Timeline) Pause(id ID) *Timeline {
	t.pendings = append(t.pendings, pendingOp{op: opPause, id: id})
	return t
}

// Resume queues a resume for id, committed by the next Start.
func (t *Timeline) Resume(id ID) *Timeline {
	t.pendings = append(t.pendings, pendingOp{op: opResume, id: id})
	return t
}

// PauseAll queues a pause of every animation.
func (t *Timeline) PauseAll() *Timeline {
	t.pendings = append(t.pendings, pendingOp{op: opPauseAll})
	return t
}

// ResumeAll queues a resume of every animation.
func (t *Timeline) ResumeAll() *Timeline {
	t.pendings = append(t.pendings, pendingOp{op: opResumeAll})
	return t
}

// RemovePending discards everything queued since the last Start.
func (t *Timeline) RemovePending() {
	t.pendings = nil
}

// ClearChain removes id's animation entirely. Rarely needed; an in-flight
// chain is normally just replaced by starting a new one.
func (t *Timeline) ClearChain(id ID) *Timeline {
	delete(t.tracks, id)
	return t
}

// Start commits every queued chain and pause toggle, anchored to the
// current instant. All chains queued before one Start call begin in
// lockstep.
func (t *Timeline) Start() {
	t.StartAt(time.Now())
}

// StartAt is Start anchored to an explicit instant.
func (t *Timeline) StartAt(now time.Time) {
	ops := t.pendings
	t.pendings = nil
	for i := range ops {
		p := &ops[i]
		switch p.op {
		case opChain:
			t.startChain(p, now)
		case opPause:
			if tr, ok := t.tracks[p.id]; ok {
				tr.meta.pauseAt(now)
			}
		case opResume:
			if tr, ok := t.tracks[p.id]; ok {
				tr.meta.resumeAt(now)
			}
		case opPauseAll:
			for _, tr := range t.tracks {
				tr.meta.pauseAt(now)
			}
		case opResumeAll:
			for _, tr := range t.tracks {
				tr.meta.resumeAt(now)
			}
		}
	}
	t.Now(now)
}

// startChain resolves a pending chain's relative offsets against now and
// overwrites any active entry for its ID. Lazy frames are resolved here,
// against the outgoing chain, before it is discarded.
func (t *Timeline) startChain(p *pendingOp, now time.Time) {
	cols := 0
	if len(p.rows) > 0 {
		cols = len(p.rows[0])
	}
	lanes := make([][]subframe, cols)
	end := now

	for _, row := range p.rows {
		for i, f := range row {
			if f == nil {
				continue
			}
			offset := f.at
			if f.speed != nil {
				offset = 0
				if n := len(lanes[i]); n > 0 {
					prev := lanes[i][n-1]
					offset = prev.at.Sub(now) + f.speed.travel(prev.value, f.value)
				}
			}
			value := f.value
			if f.lazy {
				if in, ok := t.getAt(p.id, i, now); ok {
					value = in.Value
				}
			}
			at := now.Add(offset)
			lanes[i] = append(lanes[i], subframe{at: at, value: value, ease: f.ease})
			if at.After(end) {
				end = at
			}
		}
	}

	meta := Meta{Repeat: p.repeat, Start: now, End: end, Length: end.Sub(now)}
	if p.paused {
		meta.pause = pauseState{mode: pausedMode, at: now}
	}
	t.tracks[p.id] = &track{meta: meta, lanes: lanes}
}

// Get reads the interpolated value of one track at the cached evaluation
// instant. The second return is false when there is nothing to report:
// unknown ID, track index out of range, empty track, or a track whose first
// frame is still in the future. Callers substitute their own default.
func (t *Timeline) Get(id ID, index int) (Interped, bool) {
	return t.getAt(id, index, t.getNow())
}

// GetAt is Get at an explicit instant. Reads are pure: the same ID, index
// and instant yield the same value until the next Start.
func (t *Timeline) GetAt(id ID, index int, now time.Time) (Interped, bool) {
	return t.getAt(id, index, now)
}

func (t *Timeline) getAt(id ID, index int, now time.Time) (Interped, bool) {
	tr, ok := t.tracks[id]
	if !ok || index < 0 || index >= len(tr.lanes) {
		return Interped{}, false
	}
	lane := tr.lanes[index]
	relNow := tr.meta.relative(now)

	// Scan for the latest frame at or before relNow; the frame after it, if
	// any, is the interpolation target.
	var acc *subframe
	for i := range lane {
		sf := &lane[i]
		if sf.at.After(relNow) {
			if acc == nil {
				return Interped{}, false
			}
			elapsed := relNow.Sub(acc.at)
			span := sf.at.Sub(acc.at)
			percent := sf.ease(float64(elapsed) / float64(span))
			return Interped{
				Previous: acc.value,
				Next:     sf.value,
				Value:    Lerp(acc.value, sf.value, percent),
				Percent:  percent,
			}, true
		}
		acc = sf
	}
	if acc == nil {
		return Interped{}, false
	}
	// Past the final frame: settled at its value.
	return Interped{Previous: acc.value, Next: acc.value, Value: acc.value, Percent: 1}, true
}

// Animating reports whether any chain still needs redraws: a playing
// forever chain, or a playing once chain whose end is not behind the cached
// evaluation instant. Drive redraws at FrameInterval while true; once it
// goes false the surface can stop repainting.
func (t *Timeline) Animating() bool {
	if !t.hasNow {
		return false
	}
	for _, tr := range t.tracks {
		if !tr.meta.Playing() {
			continue
		}
		if tr.meta.Repeat == Forever || !tr.meta.End.Before(t.now) {
			return true
		}
	}
	return false
}
