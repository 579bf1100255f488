package mathutil

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to the closed range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	if v > 0 {
		return math.Max(0, v-step)
	}
	if v < 0 {
		return math.Min(0, v+step)
	}
	return 0
}

// CircleHit reports whether two circles overlap or touch.
func CircleHit(ax, ay, ar, bx, by, br float64) bool {
	dx, dy, rr := ax-bx, ay-by, ar+br
	return dx*dx+dy*dy <= rr*rr
}

// DistSq returns the squared distance between two points.
func DistSq(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// Aim returns a velocity of the given speed pointing from (x, y) to (tx, ty).
func Aim(x, y, tx, ty, speed float64) (vx, vy float64) {
	a := math.Atan2(ty-y, tx-x)
	return math.Cos(a) * speed, math.Sin(a) * speed
}

// Polar returns the velocity for a heading in radians.
func Polar(angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
