package tween

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
)

// r rounds to six decimal places, the precision the reference tables are
// written at.
func r(v float64) float64 {
	return math.Round(v*10e5) / 10e5
}

type variant struct {
	name string
	fn   Tween
}

var variants = []variant{
	{"Linear", Linear},
	{"InQuad", InQuad}, {"OutQuad", OutQuad}, {"InOutQuad", InOutQuad},
	{"InCubic", InCubic}, {"OutCubic", OutCubic}, {"InOutCubic", InOutCubic},
	{"InQuart", InQuart}, {"OutQuart", OutQuart}, {"InOutQuart", InOutQuart},
	{"InQuint", InQuint}, {"OutQuint", OutQuint}, {"InOutQuint", InOutQuint},
	{"InSine", InSine}, {"OutSine", OutSine}, {"InOutSine", InOutSine},
	{"InExpo", InExpo}, {"OutExpo", OutExpo}, {"InOutExpo", InOutExpo},
	{"InCirc", InCirc}, {"OutCirc", OutCirc}, {"InOutCirc", InOutCirc},
	{"InElastic", InElastic}, {"OutElastic", OutElastic}, {"InOutElastic", InOutElastic},
	{"InBack", InBack}, {"OutBack", OutBack}, {"InOutBack", InOutBack},
	{"InBounce", InBounce}, {"OutBounce", OutBounce}, {"InOutBounce", InOutBounce},
}

// Every curve, overshooting ones included, must hit its endpoints exactly.
func TestEndpoints(t *testing.T) {
	for _, v := range variants {
		if got := r(v.fn(0)); got != 0 {
			t.Errorf("%s(0) = %v, want 0", v.name, got)
		}
		if got := r(v.fn(1)); got != 1 {
			t.Errorf("%s(1) = %v, want 1", v.name, got)
		}
	}
}

func TestMonotonicFamilies(t *testing.T) {
	monotonic := []variant{
		{"Linear", Linear},
		{"InQuad", InQuad}, {"OutQuad", OutQuad}, {"InOutQuad", InOutQuad},
		{"InCubic", InCubic}, {"OutCubic", OutCubic}, {"InOutCubic", InOutCubic},
		{"InQuart", InQuart}, {"OutQuart", OutQuart}, {"InOutQuart", InOutQuart},
		{"InQuint", InQuint}, {"OutQuint", OutQuint}, {"InOutQuint", InOutQuint},
		{"InSine", InSine}, {"OutSine", OutSine}, {"InOutSine", InOutSine},
	}
	for _, v := range monotonic {
		prev := v.fn(0)
		for i := 1; i <= 1000; i++ {
			p := float64(i) / 1000
			got := v.fn(p)
			if got < prev {
				t.Errorf("%s decreases at p=%v: %v < %v", v.name, p, got, prev)
				break
			}
			prev = got
		}
	}
}

// Reference values sampled at tenths. The tolerance absorbs the single
// precision the tables were originally computed at.
func TestCurveValues(t *testing.T) {
	cases := []struct {
		name string
		fn   Tween
		want [11]float64
	}{
		{"InQuad", InQuad, [11]float64{0, 0.01, 0.04, 0.09, 0.16, 0.25, 0.36, 0.49, 0.64, 0.81, 1}},
		{"OutQuad", OutQuad, [11]float64{0, 0.19, 0.36, 0.51, 0.64, 0.75, 0.84, 0.91, 0.96, 0.99, 1}},
		{"InOutQuad", InOutQuad, [11]float64{0, 0.02, 0.08, 0.18, 0.32, 0.50, 0.68, 0.82, 0.92, 0.98, 1}},
		{"InCubic", InCubic, [11]float64{0, 0.001, 0.008, 0.027, 0.064, 0.125, 0.216, 0.343, 0.512, 0.729, 1}},
		{"OutCubic", OutCubic, [11]float64{0, 0.271, 0.488, 0.657, 0.784, 0.875, 0.936, 0.973, 0.992, 0.999, 1}},
		{"InOutCubic", InOutCubic, [11]float64{0, 0.004, 0.032, 0.108, 0.256, 0.500, 0.744, 0.892, 0.968, 0.996, 1}},
		{"InQuart", InQuart, [11]float64{0, 0.0001, 0.0016, 0.0081, 0.0256, 0.0625, 0.1296, 0.2401, 0.4096, 0.6561, 1}},
		{"OutQuart", OutQuart, [11]float64{0, 0.3439, 0.5904, 0.7599, 0.8704, 0.9375, 0.9744, 0.9919, 0.9984, 0.9999, 1}},
		{"InOutQuart", InOutQuart, [11]float64{0, 0.0008, 0.0128, 0.0648, 0.2048, 0.5, 0.7952, 0.9352, 0.9872, 0.9992, 1}},
		{"InQuint", InQuint, [11]float64{0, 0.00001, 0.00032, 0.00243, 0.01024, 0.03125, 0.07776, 0.16807, 0.32768, 0.59049, 1}},
		{"OutQuint", OutQuint, [11]float64{0, 0.40951, 0.67232, 0.83193, 0.92224, 0.96875, 0.98976, 0.99757, 0.99968, 0.99999, 1}},
		{"InOutQuint", InOutQuint, [11]float64{0, 0.00016, 0.00512, 0.03888, 0.16384, 0.5, 0.83616, 0.96112, 0.99488, 0.99984, 1}},
		{"InSine", InSine, [11]float64{0, 0.012312, 0.048943, 0.108993, 0.190983, 0.292893, 0.412215, 0.546010, 0.690983, 0.843566, 1}},
		{"OutSine", OutSine, [11]float64{0, 0.156434, 0.309017, 0.453991, 0.587785, 0.707107, 0.809017, 0.891007, 0.951057, 0.987688, 1}},
		{"InOutSine", InOutSine, [11]float64{0, 0.024472, 0.095492, 0.206107, 0.345492, 0.5, 0.654509, 0.793893, 0.904509, 0.975528, 1}},
		{"InExpo", InExpo, [11]float64{0, 0.001953, 0.003906, 0.007813, 0.015625, 0.031250, 0.0625, 0.125, 0.25, 0.5, 1}},
		{"OutExpo", OutExpo, [11]float64{0, 0.5, 0.75, 0.875, 0.9375, 0.96875, 0.984375, 0.992188, 0.996094, 0.998047, 1}},
		{"InOutExpo", InOutExpo, [11]float64{0, 0.001953, 0.007813, 0.03125, 0.125, 0.5, 0.875, 0.96875, 0.992188, 0.998047, 1}},
		{"InCirc", InCirc, [11]float64{0, 0.005013, 0.020204, 0.046061, 0.083485, 0.133975, 0.2, 0.285857, 0.4, 0.564110, 1}},
		{"OutCirc", OutCirc, [11]float64{0, 0.435890, 0.6, 0.714143, 0.8, 0.866025, 0.916515, 0.953939, 0.979796, 0.994987, 1}},
		{"InOutCirc", InOutCirc, [11]float64{0, 0.010102, 0.041742, 0.1, 0.2, 0.5, 0.8, 0.9, 0.958258, 0.989898, 1}},
		{"InElastic", InElastic, [11]float64{0, 0.001740, -0.003160, -0.001222, 0.014860, -0.022097, -0.019313, 0.123461, -0.146947, -0.226995, 1}},
		{"OutElastic", OutElastic, [11]float64{0, 1.25, 1.125, 0.875, 1.03125, 1.015625, 0.984375, 1.003906, 1.001953, 0.998047, 1}},
		{"InOutElastic", InOutElastic, [11]float64{0, -0.001580, 0.007430, -0.009657, -0.073473, 0.5, 1.073473, 1.009657, 0.992570, 1.001580, 1}},
		{"InBack", InBack, [11]float64{0, -0.014314, -0.046451, -0.080200, -0.099352, -0.087698, -0.029028, 0.092868, 0.294198, 0.591172, 1}},
		{"OutBack", OutBack, [11]float64{0, 0.408828, 0.705802, 0.907132, 1.029027, 1.087698, 1.099352, 1.080200, 1.046451, 1.014314, 1}},
		{"InOutBack", InOutBack, [11]float64{0, -0.037519, -0.092556, -0.078833, 0.089926, 0.5, 0.910074, 1.078834, 1.092556, 1.037519, 1}},
		{"InBounce", InBounce, [11]float64{0, 0.000001, 0.087757, 0.083250, 0.273, 0.28125, 0.108, 0.319375, 0.6975, 0.924375, 1}},
		{"OutBounce", OutBounce, [11]float64{0, 0.075625, 0.3025, 0.680625, 0.892, 0.71875, 0.727, 0.91675, 0.912243, 0.999999, 1}},
		{"InOutBounce", InOutBounce, [11]float64{0, 0.043878, 0.1365, 0.054, 0.34875, 0.5, 0.65125, 0.946, 0.8635, 0.956121, 1}},
	}
	for _, c := range cases {
		for i, want := range c.want {
			p := float64(i) / 10
			got := c.fn(p)
			if math.Abs(got-want) > 1e-5 {
				t.Errorf("%s(%v) = %v, want %v", c.name, p, got, want)
			}
		}
	}
}

// The power, sine and circular families share their closed forms with
// fogleman/ease, so it works as an independent oracle for them.
func TestAgainstEase(t *testing.T) {
	pairs := []struct {
		name string
		ours Tween
		ref  func(float64) float64
	}{
		{"Linear", Linear, ease.Linear},
		{"InQuad", InQuad, ease.InQuad},
		{"OutQuad", OutQuad, ease.OutQuad},
		{"InOutQuad", InOutQuad, ease.InOutQuad},
		{"InCubic", InCubic, ease.InCubic},
		{"OutCubic", OutCubic, ease.OutCubic},
		{"InOutCubic", InOutCubic, ease.InOutCubic},
		{"InQuart", InQuart, ease.InQuart},
		{"OutQuart", OutQuart, ease.OutQuart},
		{"InOutQuart", InOutQuart, ease.InOutQuart},
		{"InQuint", InQuint, ease.InQuint},
		{"OutQuint", OutQuint, ease.OutQuint},
		{"InOutQuint", InOutQuint, ease.InOutQuint},
		{"InSine", InSine, ease.InSine},
		{"OutSine", OutSine, ease.OutSine},
		{"InOutSine", InOutSine, ease.InOutSine},
		{"InCirc", InCirc, ease.InCirc},
		{"OutCirc", OutCirc, ease.OutCirc},
		{"InOutCirc", InOutCirc, ease.InOutCirc},
	}
	for _, pr := range pairs {
		for i := 0; i <= 100; i++ {
			p := float64(i) / 100
			got, want := pr.ours(p), pr.ref(p)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("%s(%v) = %v, ease reference %v", pr.name, p, got, want)
			}
		}
	}
}

func TestTable(t *testing.T) {
	lut := Table(Linear, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, w := range want {
		if math.Abs(lut[i]-w) > 1e-12 {
			t.Errorf("Table[%d] = %v, want %v", i, lut[i], w)
		}
	}
}

func TestMirrored(t *testing.T) {
	lut := Mirrored(Linear, 6)
	for i := 0; i < 3; i++ {
		if lut[i] != lut[5-i] {
			t.Errorf("Mirrored not symmetric at %d: %v != %v", i, lut[i], lut[5-i])
		}
	}
	if lut[0] != 0 {
		t.Errorf("Mirrored[0] = %v, want 0", lut[0])
	}
}
