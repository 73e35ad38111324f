package vector

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotate2 rotates v counter-clockwise by angle degrees.
func Rotate2(v *Vec2, angle float32) {
	*v = mgl32.Rotate2D(mgl32.DegToRad(angle)).Mul2x1(*v)
}

// Rotation2 returns the heading of v in degrees where (0, 1) is 0.
func Rotation2(v Vec2) float32 {
	return mgl32.RadToDeg(math32.Atan2(v[1], v[0])) - 90
}

// Rotate3 rotates v by the given degrees around the fixed axes in the
// order z, x, y. Axes with a zero angle are skipped.
func Rotate3(v *Vec3, x, y, z float32) {
	if z != 0 {
		*v = mgl32.Rotate3DZ(mgl32.DegToRad(z)).Mul3x1(*v)
	}
	if x != 0 {
		*v = mgl32.Rotate3DX(mgl32.DegToRad(x)).Mul3x1(*v)
	}
	if y != 0 {
		*v = mgl32.Rotate3DY(mgl32.DegToRad(y)).Mul3x1(*v)
	}
}

// Rotate3Euler is Rotate3 with the angles packed as (x, y, z).
func Rotate3Euler(v *Vec3, euler Vec3) {
	Rotate3(v, euler[0], euler[1], euler[2])
}
