package vector

import (
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/gamemath/pkg/mathf"
)

// Rand is a seeded source for random vectors. It is not safe for
// concurrent use. A nil *Rand draws from the process-wide source.
type Rand struct {
	rnd *rand.Rand
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandString hashes seed into a NewRand seed, so configs can use words.
func NewRandString(seed string) *Rand {
	return NewRand(xxhash.Sum64String(seed))
}

// Value returns a float in [0, 1).
func (r *Rand) Value() float32 {
	if r == nil {
		return rand.Float32()
	}
	return r.rnd.Float32()
}

// Range returns a float in [lo, hi], both ends included.
func (r *Rand) Range(lo, hi float32) float32 {
	var u uint32
	if r == nil {
		u = rand.Uint32()
	} else {
		u = r.rnd.Uint32()
	}
	t := float32(float64(u) / math.MaxUint32)

	value := mathf.Lerp(lo, hi, t)
	if lo <= hi {
		return mathf.Clamp(value, lo, hi)
	}
	return mathf.Clamp(value, hi, lo)
}

// Random returns a vector with every component in [0, 1).
func Random[V Vector]() V {
	return RandomWith[V](nil)
}

// RandomRange returns a vector with component i in [min[i], max[i]].
func RandomRange[V Vector](min, max V) V {
	return RandomRangeWith(nil, min, max)
}

// RandomWith is Random drawing from r.
func RandomWith[V Vector](r *Rand) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = r.Value()
	}
	return v
}

// RandomRangeWith is RandomRange drawing from r.
func RandomRangeWith[V Vector](r *Rand, min, max V) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = r.Range(min[i], max[i])
	}
	return v
}
