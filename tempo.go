// Package tempo is a keyframe animation timeline for retained-mode widget
// UIs. Application update logic describes multi-property animations as
// chains of keyframes, commits them to a Timeline, and view logic reads
// interpolated values back out per track while building widgets.
//
// The flow is:
//
//	id := tempo.ID("panel")
//	chain := tempo.NewChain(id).
//		Link(tempo.Container(0).Width(10)).
//		Link(tempo.Container(2 * time.Second).Width(200).Ease(tween.OutCubic))
//	timeline.SetChain(chain)
//	timeline.Start()
//
// and later, once per redraw:
//
//	timeline.Now(now)
//	v, ok := timeline.Get(id, tempo.ContainerWidth)
//
// Every chain queued with SetChain before a single Start call is anchored to
// the same instant, so animations defined together run in lockstep.
package tempo

// Lerp linearly interpolates between start and end by p in decimal form.
func Lerp(start, end, p float64) float64 {
	return (1-p)*start + p*end
}

// Flip reverses a progress fraction.
func Flip(p float64) float64 {
	return 1 - p
}
