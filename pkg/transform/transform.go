// Package transform has per-axis setters for engine transforms.
package transform

import (
	"github.com/zeusync/gamemath/pkg/vector"
)

type Vec3 = vector.Vec3

var _ Transform = (*Transform3D)(nil)

// Transform3D is a plain value-backed Transform.
type Transform3D struct {
	Pos   Vec3
	Euler Vec3
}

func NewTransform3D(pos, euler Vec3) *Transform3D {
	return &Transform3D{Pos: pos, Euler: euler}
}

func (t *Transform3D) Position() Vec3        { return t.Pos }
func (t *Transform3D) SetPosition(p Vec3)    { t.Pos = p }
func (t *Transform3D) EulerAngles() Vec3     { return t.Euler }
func (t *Transform3D) SetEulerAngles(e Vec3) { t.Euler = e }

// SetPosX sets the x component of the position.
func SetPosX(t Transform, x float32) { setPos(t, 0, x) }

// SetPosY sets the y component of the position.
func SetPosY(t Transform, y float32) { setPos(t, 1, y) }

// SetPosZ sets the z component of the position.
func SetPosZ(t Transform, z float32) { setPos(t, 2, z) }

// SetAngleX sets the x component of the euler angles.
func SetAngleX(t Transform, x float32) { setAngle(t, 0, x) }

// SetAngleY sets the y component of the euler angles.
func SetAngleY(t Transform, y float32) { setAngle(t, 1, y) }

// SetAngleZ sets the z component of the euler angles.
func SetAngleZ(t Transform, z float32) { setAngle(t, 2, z) }

func setPos(t Transform, axis int, value float32) {
	pos := t.Position()
	pos[axis] = value
	t.SetPosition(pos)
}

func setAngle(t Transform, axis int, value float32) {
	euler := t.EulerAngles()
	euler[axis] = value
	t.SetEulerAngles(euler)
}

// Distance returns the distance between the positions of a and b.
func Distance(a, b Transform) float32 {
	return vector.Magnitude(a.Position().Sub(b.Position()))
}

// Rotate turns the position of t around the origin by the given degrees,
// z first, then x, then y.
func Rotate(t Transform, x, y, z float32) {
	pos := t.Position()
	vector.Rotate3(&pos, x, y, z)
	t.SetPosition(pos)
}
