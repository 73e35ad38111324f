package vector

// SetMagnitude rescales v to the given length along its current direction.
// A zero vector becomes NaN.
func SetMagnitude[V Vector](v *V, magnitude float32) {
	*v = scale(*v, magnitude/Magnitude(*v))
}

// WithMagnitude is SetMagnitude for callers that need the zero case reported.
func WithMagnitude[V Vector](v V, magnitude float32) (V, error) {
	length := Magnitude(v)
	if length == 0 {
		return v, ErrZeroLength
	}
	return scale(v, magnitude/length), nil
}

// Limit shortens v to maxMagnitude if it is longer.
func Limit[V Vector](v *V, maxMagnitude float32) {
	if Magnitude(*v) > maxMagnitude {
		SetMagnitude(v, maxMagnitude)
	}
}

// ClampMagnitude returns v rescaled so its length lies in [min, max].
func ClampMagnitude[V Vector](v V, min, max float32) V {
	length := Magnitude(v)

	if length < min {
		SetMagnitude(&v, min)
	} else if length > max {
		SetMagnitude(&v, max)
	}
	return v
}

// ClampMagnitude01 clamps the length of v to [0, 1].
func ClampMagnitude01[V Vector](v V) V {
	return ClampMagnitude(v, 0, 1)
}
