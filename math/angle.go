package math

import "math"

// AngleMod changes an angle to be within 0-360 degrees
func AngleMod(a float64) float64 {
	return a - math.Floor(a/360)*360
}

// AngleMod32 changes an angle to be within 0-360 degrees
func AngleMod32(a float32) float32 {
	return float32(AngleMod(float64(a)))
}

// AngleMod180 changes an angle to be within (-180,180] degrees
func AngleMod180(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a <= -180 {
		a += 360
	}
	return a
}

// AngleMod180_32 changes an angle to be within (-180,180] degrees
func AngleMod180_32(a float32) float32 {
	return float32(AngleMod180(float64(a)))
}
