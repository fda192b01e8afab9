package tween

// Table samples fn at size evenly spaced progress values from 0 to 1
// inclusive. Useful for per-pixel work where calling the curve for every
// pixel on every frame would be wasteful.
func Table(fn Tween, size int) []float64 {
	if size < 2 {
		return []float64{fn(1)}
	}
	step := 1.0 / float64(size-1)
	lut := make([]float64, size)
	for i := range lut {
		lut[i] = fn(float64(i) * step)
	}
	return lut
}

// Mirrored samples fn up to its midpoint and reflects it, producing a table
// that ramps up and back down. Handy for pulse style brightness ramps.
func Mirrored(fn Tween, size int) []float64 {
	increment := 1.0 / float64(size/2)
	lut := make([]float64, size)
	for i, j := 0, size-1; i < size/2; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
