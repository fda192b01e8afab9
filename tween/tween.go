// Package tween provides the easing curves used to shape animation
// interpolation. Every curve maps a linear progress value in [0, 1] to an
// eased progress value; the overshooting families (Back, Elastic) may leave
// [0, 1] in between, but all curves hit exactly 0 at 0 and 1 at 1.
package tween

import "math"

// A Tween remaps linear progress into eased progress.
type Tween func(p float64) float64

// Linear is the identity curve, the default easing for keyframes.
func Linear(p float64) float64 {
	return p
}

// InQuad is modeled after the parabola y = x^2.
func InQuad(p float64) float64 {
	return p * p
}

// OutQuad is modeled after the parabola y = -x^2 + 2x.
func OutQuad(p float64) float64 {
	return -(p * (p - 2))
}

// InOutQuad is modeled after the piecewise quadratic
// y = (1/2)((2x)^2)             ; [0, 0.5)
// y = -(1/2)((2x-1)*(2x-3) - 1) ; [0.5, 1]
func InOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -2*p*p + 4*p - 1
}

// InCubic is modeled after the cubic y = x^3.
func InCubic(p float64) float64 {
	return p * p * p
}

// OutCubic is modeled after the cubic y = (x-1)^3 + 1.
func OutCubic(p float64) float64 {
	q := p - 1
	return q*q*q + 1
}

// InOutCubic is modeled after the piecewise cubic
// y = (1/2)((2x)^3)       ; [0, 0.5]
// y = (1/2)((2x-2)^3 + 2) ; [0.5, 1]
func InOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := 2*p - 2
	return q*q*q*0.5 + 1
}

// InQuart is modeled after the quartic y = x^4.
func InQuart(p float64) float64 {
	return p * p * p * p
}

// OutQuart is modeled after the quartic y = 1 - (x-1)^4.
func OutQuart(p float64) float64 {
	q := p - 1
	return q*q*q*(1-p) + 1
}

// InOutQuart is modeled after the piecewise quartic
// y = (1/2)((2x)^4)       ; [0, 0.5]
// y = -(1/2)((2x-2)^4 -2) ; [0.5, 1]
func InOutQuart(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	q := p - 1
	return q*q*q*q*-8 + 1
}

// InQuint is modeled after the quintic y = x^5.
func InQuint(p float64) float64 {
	return p * p * p * p * p
}

// OutQuint is modeled after the quintic y = (x-1)^5 + 1.
func OutQuint(p float64) float64 {
	q := p - 1
	return q*q*q*q*q + 1
}

// InOutQuint is modeled after the piecewise quintic
// y = (1/2)((2x)^5)       ; [0, 0.5]
// y = (1/2)((2x-2)^5 + 2) ; [0.5, 1]
func InOutQuint(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	q := 2*p - 2
	return q*q*q*q*q*0.5 + 1
}

// InSine is modeled after an eighth sine wave y = 1 - cos((x * pi) / 2).
func InSine(p float64) float64 {
	return 1 - math.Cos((p*math.Pi)/2)
}

// OutSine is modeled after an eighth sine wave y = sin((x * pi) / 2).
func OutSine(p float64) float64 {
	return math.Sin((p * math.Pi) / 2)
}

// InOutSine is modeled after a quarter sine wave y = -0.5 * (cos(x * pi) - 1).
func InOutSine(p float64) float64 {
	return -0.5 * (math.Cos(p*math.Pi) - 1)
}

// InExpo is modeled after the exponential y = 2^(10x - 10), pinned to 0 at
// x = 0 so floating point never leaves a visible residue at the start.
func InExpo(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*p-10)
}

// OutExpo is modeled after the exponential y = 1 - 2^(-10x), pinned to 1 at
// x = 1.
func OutExpo(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

// InOutExpo is modeled after the piecewise exponential
// y = 2^(20x - 10) / 2         ; [0, 0.5]
// y = 1 - 0.5*2^(-10(2x - 1))  ; [0.5, 1]
// pinned at both endpoints.
func InOutExpo(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return math.Pow(2, 20*p-10) * 0.5
	default:
		return math.Pow(2, -20*p+10)*-0.5 + 1
	}
}

// InCirc is modeled after shifted quadrant IV of the unit circle.
func InCirc(p float64) float64 {
	return 1 - math.Sqrt(1-p*p)
}

// OutCirc is modeled after shifted quadrant II of the unit circle.
func OutCirc(p float64) float64 {
	return math.Sqrt((2 - p) * p)
}

// InOutCirc is modeled after the piecewise circular function
// y = (1/2)(1 - sqrt(1 - 4x^2))           ; [0, 0.5)
// y = (1/2)(sqrt(-(2x - 3)*(2x - 1)) + 1) ; [0.5, 1]
func InOutCirc(p float64) float64 {
	if p < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*p*p))
	}
	q := -2*p + 2
	return 0.5 * (math.Sqrt(1-q*q) + 1)
}

// InElastic is modeled after the damped sine wave
// y = sin(13 pi/2 x) * 2^(10(x - 1)).
func InElastic(p float64) float64 {
	return math.Sin(13*(math.Pi/2)*p) * math.Pow(2, 10*(p-1))
}

// OutElastic is modeled after the damped sine wave
// y = 2^(-10x) * sin((10x - 0.75) * (2 pi / 3)) + 1, pinned to 1 at x = 1.
func OutElastic(p float64) float64 {
	if p == 1 {
		return 1
	}
	return math.Pow(2, -10*p)*math.Sin((10*p-0.75)*(2*math.Pi/3)) + 1
}

// InOutElastic is modeled after the piecewise exponentially damped sine wave
// y = 2^(10(2x - 1) - 1) * sin(13 pi x)       ; [0, 0.5]
// y = (2 - 2^(-10(2x - 1)) * sin(13 pi x)) / 2 ; [0.5, 1]
func InOutElastic(p float64) float64 {
	if p < 0.5 {
		return math.Pow(2, 10*(2*p-1)-1) * math.Sin(13*math.Pi*p)
	}
	return 0.5 * (2 - math.Pow(2, -20*p+10)*math.Sin(13*math.Pi*p))
}

// Overshoot constants for the Back family.
const (
	backC      = 1.70158
	backInOutC = 2.5949095
)

// InBack is modeled after y = 2.70158x^3 - 1.70158x^2, pulling back past the
// start before moving forward.
func InBack(p float64) float64 {
	return (backC+1)*p*p*p - backC*p*p
}

// OutBack is modeled after y = 1 + 2.70158(x-1)^3 + 1.70158(x-1)^2,
// overshooting the end before settling.
func OutBack(p float64) float64 {
	q := p - 1
	return 1 + (backC+1)*q*q*q + backC*q*q
}

// InOutBack overshoots on both ends, using the scaled-up constant 2.5949095.
func InOutBack(p float64) float64 {
	if p < 0.5 {
		q := 2 * p
		return q * q * (0.5 * ((backInOutC+1)*q - backInOutC))
	}
	q := 2*p - 2
	return 0.5 * (q*q*((backInOutC+1)*q+backInOutC) + 2)
}

// OutBounce is a piecewise quadratic approximating a bouncing ball coming to
// rest at the end point.
func OutBounce(p float64) float64 {
	switch {
	case p < 4.0/11.0:
		return (121 * p * p) / 16
	case p < 8.0/11.0:
		return (363.0/40.0)*p*p - (99.0/10.0)*p + 17.0/5.0
	case p < 9.0/10.0:
		return (4356.0/361.0)*p*p - (35442.0/1805.0)*p + 16061.0/1805.0
	default:
		return (54.0/5.0)*p*p - (513.0/25.0)*p + 268.0/25.0
	}
}

// InBounce bounces away from the start: y = 1 - OutBounce(1 - x).
func InBounce(p float64) float64 {
	return 1 - OutBounce(1-p)
}

// InOutBounce bounces on both ends, splitting at 0.5.
func InOutBounce(p float64) float64 {
	if p < 0.5 {
		return 0.5 * InBounce(p*2)
	}
	return 0.5 + 0.5*OutBounce(p*2-1)
}
