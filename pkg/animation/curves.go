package animation

import "math"

// LinearCurve passes progress through unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// The standard CSS easing presets. Assign one to an
// [AnimationController]'s Curve field, or pass it to the implicit
// animation widgets.
var (
	// Ease is the general-purpose preset (CSS ease).
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn accelerates from a standstill (CSS ease-in).
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut decelerates into the target (CSS ease-out).
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOut is slow at both ends (CSS ease-in-out).
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier builds an easing function from the two control points of
// a CSS-style cubic bezier anchored at (0,0) and (1,1). Solving x(u)=t
// uses Newton iteration with a bisection fallback for flat regions.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for i := 0; i < 8; i++ {
			err := bezierAxis(x1, x2, u) - t
			if math.Abs(err) < 1e-7 {
				return bezierAxis(y1, y2, clampUnit(u))
			}
			slope := bezierSlope(x1, x2, u)
			if math.Abs(slope) < 1e-7 {
				break
			}
			u -= err / slope
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			err := bezierAxis(x1, x2, u) - t
			if math.Abs(err) < 1e-7 {
				break
			}
			if err > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierAxis(y1, y2, u)
	}
}

// bezierAxis evaluates one axis of the bezier at parameter t, with the
// endpoint coefficients fixed at 0 and 1.
func bezierAxis(c1, c2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*c1 + 3*inv*t*t*c2 + t*t*t
}

func bezierSlope(c1, c2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*c1 + 6*inv*t*(c2-c1) + 3*t*t*(1-c2)
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
