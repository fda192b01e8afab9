package tempo

import (
	"strings"
	"testing"
	"time"
)

func TestFramesOnlyForSetSlots(t *testing.T) {
	row := Container(time.Second).Width(80).Height(24).Keyframe().frames()
	if len(row) != KindContainer.Tracks() {
		t.Fatalf("row width = %d, want %d", len(row), KindContainer.Tracks())
	}
	for i, f := range row {
		switch i {
		case ContainerWidth, ContainerHeight:
			if f == nil {
				t.Errorf("slot %d missing its frame", i)
			}
		default:
			if f != nil {
				t.Errorf("slot %d has a frame it was never given", i)
			}
		}
	}
	if row[ContainerWidth].value != 80 || row[ContainerHeight].value != 24 {
		t.Errorf("frame values = %v, %v; want 80, 24", row[ContainerWidth].value, row[ContainerHeight].value)
	}
}

func TestLazyFramesFillEverySlot(t *testing.T) {
	row := LazyContainer(0).Width(80).Keyframe().frames()
	for i, f := range row {
		if f == nil {
			t.Fatalf("lazy keyframe left slot %d empty", i)
		}
		if !f.lazy {
			t.Errorf("slot %d frame is not lazy", i)
		}
	}
	if row[ContainerWidth].value != 80 {
		t.Errorf("fallback = %v, want 80", row[ContainerWidth].value)
	}
	if row[ContainerHeight].value != 0 {
		t.Errorf("unset fallback = %v, want 0", row[ContainerHeight].value)
	}
}

func TestBuildersDoNotShareState(t *testing.T) {
	base := Container(0).Width(10)
	wide := base.Width(99)
	if got := base.Keyframe().frames()[ContainerWidth].value; got != 10 {
		t.Errorf("earlier builder changed by later Set: %v", got)
	}
	if got := wide.Keyframe().frames()[ContainerWidth].value; got != 99 {
		t.Errorf("later builder = %v, want 99", got)
	}
	tall := base.Height(5)
	if base.Keyframe().frames()[ContainerHeight] != nil {
		t.Error("earlier builder grew a frame from a derived one")
	}
	if tall.Keyframe().frames()[ContainerHeight] == nil {
		t.Error("derived builder lost its frame")
	}
}

func TestEaseCoversWholeKeyframe(t *testing.T) {
	bouncy := func(p float64) float64 { return p * p }
	row := Container(0).Width(1).Height(2).Ease(bouncy).Keyframe().frames()
	for _, i := range []int{ContainerWidth, ContainerHeight} {
		if got := row[i].ease(0.5); got != 0.25 {
			t.Errorf("slot %d ease(0.5) = %v, want 0.25", i, got)
		}
	}
}

func TestChainRejectsMixedKinds(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic from mixing kinds")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "container") {
			t.Errorf("panic message %v should name the kinds", r)
		}
	}()
	NewChain("x").Link(Container(0).Width(1)).Link(Button(0).Width(2))
}

func TestSpeedTravel(t *testing.T) {
	cases := []struct {
		s        Speed
		from, to float64
		want     time.Duration
	}{
		{PerSecond(50), 0, 100, 2 * time.Second},
		{PerSecond(50), 100, 0, 2 * time.Second},
		{PerMillisecond(1), 0, 250, 250 * time.Millisecond},
		{PerSecond(10), 5, 5, 0},
	}
	for _, c := range cases {
		if got := c.s.travel(c.from, c.to); got != c.want {
			t.Errorf("travel(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCustomKind(t *testing.T) {
	gauge := NewKind("gauge", "angle", "glow")
	if gauge.Name() != "gauge" || gauge.Tracks() != 2 {
		t.Fatalf("kind = %q/%d, want gauge/2", gauge.Name(), gauge.Tracks())
	}

	tl := NewTimeline()
	tl.SetChain(NewChain("dial").
		Link(gauge.Frame(0).Set(0, 0)).
		Link(gauge.Frame(time.Second).Set(0, 270)))
	tl.StartAt(t0)

	in, ok := tl.GetAt("dial", 0, t0.Add(500*time.Millisecond))
	if !ok {
		t.Fatal("expected a value on the custom track")
	}
	approx(t, in.Value, 135, 1e-9)
	if _, ok := tl.GetAt("dial", 1, t0); ok {
		t.Error("never-set custom track should report nothing")
	}
}

func TestUnique(t *testing.T) {
	a, b := Unique(), Unique()
	if a == "" || b == "" {
		t.Fatal("Unique returned an empty id")
	}
	if a == b {
		t.Errorf("consecutive ids collide: %s", a)
	}
}

func TestLerpAndFlip(t *testing.T) {
	approx(t, Lerp(0, 10, 0.5), 5, 1e-12)
	approx(t, Lerp(10, 0, 0.25), 7.5, 1e-12)
	approx(t, Lerp(5, 5, 0.9), 5, 1e-12)
	approx(t, Flip(0.2), 0.8, 1e-12)
	approx(t, Flip(1), 0, 1e-12)
}
