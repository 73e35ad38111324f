package vector

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

var approx = cmpopts.EquateApprox(0, tolerance)

func requireApprox[V Vector](t *testing.T, want, got V) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate2(t *testing.T) {
	v := Vec2{1, 0}
	Rotate2(&v, 90)
	requireApprox(t, Vec2{0, 1}, v)

	Rotate2(&v, 90)
	requireApprox(t, Vec2{-1, 0}, v)
}

func TestRotate2Inverse(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 100; i++ {
		v := RandomRangeWith(r, Vec2{-10, -10}, Vec2{10, 10})
		angle := r.Range(-720, 720)

		got := v
		Rotate2(&got, angle)
		Rotate2(&got, -angle)
		if diff := cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
			t.Fatalf("rotate %v by %v and back (-want +got):\n%s", v, angle, diff)
		}
	}
}

func TestRotation2(t *testing.T) {
	require.InDelta(t, 0, Rotation2(Vec2{0, 1}), 1e-4)
	require.InDelta(t, -90, Rotation2(Vec2{1, 0}), 1e-4)
	require.InDelta(t, 90, Rotation2(Vec2{-1, 0}), 1e-4)
	require.InDelta(t, -180, Rotation2(Vec2{0, -1}), 1e-4)
	require.InDelta(t, -45, Rotation2(Vec2{1, 1}), 1e-4)
}

func TestRotate3(t *testing.T) {
	v := Vec3{0, 1, 0}
	Rotate3(&v, 90, 0, 0)
	requireApprox(t, Vec3{0, 0, 1}, v)
}

func TestRotate3Order(t *testing.T) {
	// z first takes x onto y, x then lifts it onto z, y finally swings it back to x
	v := Vec3{1, 0, 0}
	Rotate3(&v, 90, 90, 90)
	requireApprox(t, Vec3{1, 0, 0}, v)

	v = Vec3{1, 0, 0}
	Rotate3(&v, 90, 0, 90)
	requireApprox(t, Vec3{0, 0, 1}, v)

	v = Vec3{0, 0, 1}
	Rotate3Euler(&v, Vec3{0, 90, 0})
	requireApprox(t, Vec3{1, 0, 0}, v)
}

func TestRotate3Zero(t *testing.T) {
	v := Vec3{1.5, -2, 3.25}
	Rotate3(&v, 0, 0, 0)
	require.Equal(t, Vec3{1.5, -2, 3.25}, v)
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, float32(5), Magnitude(Vec2{3, 4}))
	require.Equal(t, float32(3), Magnitude(Vec3{1, 2, 2}))
	require.Equal(t, float32(0), Magnitude(Vec3{}))
}

func TestSetMagnitude(t *testing.T) {
	r := NewRandString("set-magnitude")
	for i := 0; i < 50; i++ {
		v := RandomRangeWith(r, Vec3{-5, -5, -5}, Vec3{5, 5, 5})
		if Magnitude(v) == 0 {
			continue
		}
		m := r.Range(0.1, 20)

		got := v
		SetMagnitude(&got, m)
		require.InDelta(t, m, Magnitude(got), 1e-4)
		requireApprox(t, v.Normalize(), got.Normalize())
	}
}

func TestSetMagnitudeZeroVector(t *testing.T) {
	v := Vec2{}
	SetMagnitude(&v, 3)
	require.True(t, math32.IsNaN(v[0]))
	require.True(t, math32.IsNaN(v[1]))
}

func TestWithMagnitude(t *testing.T) {
	got, err := WithMagnitude(Vec2{3, 4}, 10)
	require.NoError(t, err)
	requireApprox(t, Vec2{6, 8}, got)

	got, err = WithMagnitude(Vec2{}, 10)
	require.True(t, errors.Is(err, ErrZeroLength))
	require.Equal(t, Vec2{}, got)
}

func TestLimit(t *testing.T) {
	v := Vec2{3, 4}
	Limit(&v, 10)
	require.Equal(t, Vec2{3, 4}, v)

	Limit(&v, 1)
	requireApprox(t, Vec2{0.6, 0.8}, v)

	zero := Vec3{}
	Limit(&zero, 1)
	require.Equal(t, Vec3{}, zero)
}

func TestClampMagnitude(t *testing.T) {
	requireApprox(t, Vec2{0.6, 0.8}, ClampMagnitude(Vec2{3, 4}, 0, 1))
	requireApprox(t, Vec2{6, 8}, ClampMagnitude(Vec2{0.3, 0.4}, 10, 20))
	require.Equal(t, Vec3{0, 2, 0}, ClampMagnitude(Vec3{0, 2, 0}, 1, 3))
	requireApprox(t, Vec3{0, 0, 1}, ClampMagnitude01(Vec3{0, 0, 7}))
	require.Equal(t, Vec3{0, 0, 0.5}, ClampMagnitude01(Vec3{0, 0, 0.5}))
}

func TestClampMagnitudeRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 100; i++ {
		v := RandomRangeWith(r, Vec3{-3, -3, -3}, Vec3{3, 3, 3})
		if Magnitude(v) == 0 {
			continue
		}
		lo := r.Range(0, 2)
		hi := lo + r.Range(0, 2)

		length := Magnitude(ClampMagnitude(v, lo, hi))
		require.GreaterOrEqual(t, length, lo-1e-4)
		require.LessOrEqual(t, length, hi+1e-4)
	}
}

func TestRounding(t *testing.T) {
	v := Vec3{1.5, -1.5, 2.4}
	require.Equal(t, Vec3{2, -2, 2}, Round(v))
	require.Equal(t, Vec3{1, -2, 2}, Floor(v))
	require.Equal(t, Vec3{2, -1, 3}, Ceil(v))

	require.Equal(t, Vec2{2, -4}, Round(Vec2{2.5, -3.5}))
	require.Equal(t, Vec2{0, -1}, Floor(Vec2{0.99, -0.01}))
	require.Equal(t, Vec2{1, 0}, Ceil(Vec2{0.01, -0.99}))
}

func TestRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Random[Vec3]()
		for _, c := range v {
			require.GreaterOrEqual(t, c, float32(0))
			require.Less(t, c, float32(1))
		}
	}
}

func TestRandomRange(t *testing.T) {
	lo, hi := Vec2{-1, 10}, Vec2{1, 10}
	for i := 0; i < 100; i++ {
		v := RandomRange(lo, hi)
		require.GreaterOrEqual(t, v[0], float32(-1))
		require.LessOrEqual(t, v[0], float32(1))
		require.Equal(t, float32(10), v[1])
	}

	// reversed bounds are still honoured per axis
	v := RandomRange(Vec3{5, 5, 5}, Vec3{4, 4, 4})
	for _, c := range v {
		require.GreaterOrEqual(t, c, float32(4))
		require.LessOrEqual(t, c, float32(5))
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRandString("demo")
	b := NewRandString("demo")
	for i := 0; i < 10; i++ {
		require.Equal(t, RandomWith[Vec3](a), RandomWith[Vec3](b))
	}
	require.NotEqual(t, RandomWith[Vec2](NewRand(1)), RandomWith[Vec2](NewRand(2)))
}

func TestGet(t *testing.T) {
	v := Vec3{1, 2, 3}
	require.Equal(t, Vec2{3, 1}, Get2(v, 2, 0))
	require.Equal(t, Vec3{2, 0, 3}, Get3(v, 1, Zero, 2))
	require.Equal(t, Vec3{2, 0, 1}, Get3(Vec2{1, 2}, 1, Zero, 0))
	require.Panics(t, func() { Get2(Vec2{1, 2}, 2, 0) })
}

func TestAxisIndex(t *testing.T) {
	for axis, want := range map[byte]int{'x': 0, 'Y': 1, 'z': 2, '0': Zero} {
		got, ok := AxisIndex(axis)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := AxisIndex('w')
	require.False(t, ok)
}
