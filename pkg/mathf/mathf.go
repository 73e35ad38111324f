// Package mathf contains scalar helpers shared by the vector and color packages.
// All functions are generic over float32 and float64.
package mathf

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Angle conversion factors.
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Clamp limits value to the closed range [lo, hi].
func Clamp[F constraints.Float](value, lo, hi F) F {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Clamp01 limits value to [0, 1].
func Clamp01[F constraints.Float](value F) F {
	return Clamp(value, 0, 1)
}

// Lerp interpolates between a and b without clamping t.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// Repeat wraps t into [0, length). A tiny negative t would round up to
// length itself, so that case comes back as 0.
func Repeat[F constraints.Float](t, length F) F {
	r := t - F(math.Floor(float64(t/length)))*length
	if r >= length {
		return 0
	}
	return r
}

// Round rounds half to even, the way the engine's Mathf.Round does.
func Round[F constraints.Float](value F) F {
	return F(math.RoundToEven(float64(value)))
}

// RoundToNearestStep snaps value to the closest multiple of step.
func RoundToNearestStep[F constraints.Float](value, step F) F {
	return Round(value/step) * step
}

// Map re-maps value from the range [start1, stop1] onto [start2, stop2].
// When clamp is set the result is kept inside the target range regardless
// of which bound is larger.
func Map[F constraints.Float](value, start1, stop1, start2, stop2 F, clamp bool) F {
	range1 := stop1 - start1
	range2 := stop2 - start2

	mapped := range2/range1*(value-start1) + start2

	if clamp {
		mapped = Clamp(mapped, min(start2, stop2), max(start2, stop2))
	}
	return mapped
}
