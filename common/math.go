package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or +1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Approach moves v toward target by at most step without passing it.
func Approach(v, target, step float64) float64 {
	if step < 0 {
		step = -step
	}
	if v < target {
		return math.Min(v+step, target)
	}
	if v > target {
		return math.Max(v-step, target)
	}
	return v
}

// AlmostZero reports whether |v| <= eps.
func AlmostZero(v, eps float64) bool {
	return v >= -eps && v <= eps
}
