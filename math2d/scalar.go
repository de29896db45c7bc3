package math2d

import "math"

// ToRad converts degrees to radians
func ToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDeg converts radians to degrees
func ToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// NormalizeAngle wraps an angle into (-π, π]. Non-finite angles return NaN.
func NormalizeAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return math.NaN()
	}
	angle = math.Remainder(angle, 2*math.Pi)
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// Clamp limits value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// AngleBetween returns the absolute difference between the headings of v1 and v2
func AngleBetween(v1, v2 Vector2) float64 {
	return math.Abs(v2.Angle() - v1.Angle())
}

// NearZero reports whether |v| <= eps
func NearZero(v, eps float64) bool {
	return math.Abs(v) <= eps
}

// Wrap folds value into [0, size). A non-positive size disables wrapping.
func Wrap(value, size float64) float64 {
	if size <= 0 {
		return value
	}
	value = math.Mod(value, size)
	if value < 0 {
		value += size
	}
	return value
}
