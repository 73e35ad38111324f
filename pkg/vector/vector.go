// Package vector extends the engine's float32 vectors with rotation,
// clamping, rounding, magnitude, random and swizzle helpers.
//
// Functions that take a pointer mutate the vector in place; every other
// function returns a new value. Degenerate input is not guarded: a zero
// vector passed to SetMagnitude or ClampMagnitude yields NaN components.
// Use WithMagnitude when a zero length has to be reported instead.
package vector

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
)

// Vector is satisfied by both engine vector types.
type Vector interface {
	mgl32.Vec2 | mgl32.Vec3
}

var ErrZeroLength = errors.New("vector has zero length")

// Magnitude returns the euclidean length of v.
func Magnitude[V Vector](v V) float32 {
	var sum float32
	for i := 0; i < len(v); i++ {
		sum += v[i] * v[i]
	}
	return math32.Sqrt(sum)
}

func scale[V Vector](v V, s float32) V {
	for i := 0; i < len(v); i++ {
		v[i] *= s
	}
	return v
}

func apply[V Vector](v V, fn func(float32) float32) V {
	for i := 0; i < len(v); i++ {
		v[i] = fn(v[i])
	}
	return v
}
