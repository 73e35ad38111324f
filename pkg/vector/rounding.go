package vector

import (
	"github.com/chewxy/math32"

	"github.com/zeusync/gamemath/pkg/mathf"
)

// Round rounds every component to the nearest integer, halves to even.
func Round[V Vector](v V) V {
	return apply(v, mathf.Round[float32])
}

// Floor sets every component to the largest integer not above it.
func Floor[V Vector](v V) V {
	return apply(v, math32.Floor)
}

// Ceil sets every component to the smallest integer not below it.
func Ceil[V Vector](v V) V {
	return apply(v, math32.Ceil)
}
