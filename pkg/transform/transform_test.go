package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// recorder counts writes so the setters can be checked for a single
// read-modify-write per call.
type recorder struct {
	Transform3D
	writes int
}

func (r *recorder) SetPosition(p Vec3)    { r.writes++; r.Transform3D.SetPosition(p) }
func (r *recorder) SetEulerAngles(e Vec3) { r.writes++; r.Transform3D.SetEulerAngles(e) }

func TestSetPos(t *testing.T) {
	tr := NewTransform3D(Vec3{1, 2, 3}, Vec3{})

	SetPosX(tr, 10)
	require.Equal(t, Vec3{10, 2, 3}, tr.Position())
	SetPosY(tr, 20)
	require.Equal(t, Vec3{10, 20, 3}, tr.Position())
	SetPosZ(tr, 30)
	require.Equal(t, Vec3{10, 20, 30}, tr.Position())
	require.Equal(t, Vec3{}, tr.EulerAngles())
}

func TestSetAngle(t *testing.T) {
	tr := NewTransform3D(Vec3{1, 2, 3}, Vec3{45, 90, 180})

	SetAngleX(tr, 0)
	SetAngleY(tr, 15)
	SetAngleZ(tr, 270)
	require.Equal(t, Vec3{0, 15, 270}, tr.EulerAngles())
	require.Equal(t, Vec3{1, 2, 3}, tr.Position())
}

func TestSettersWriteOnce(t *testing.T) {
	r := &recorder{}

	SetPosX(r, 1)
	SetAngleZ(r, 2)
	require.Equal(t, 2, r.writes)
	require.Equal(t, Vec3{1, 0, 0}, r.Pos)
	require.Equal(t, Vec3{0, 0, 2}, r.Euler)
}

func TestDistance(t *testing.T) {
	a := NewTransform3D(Vec3{1, 1, 1}, Vec3{})
	b := NewTransform3D(Vec3{1, 4, 5}, Vec3{})
	require.Equal(t, float32(5), Distance(a, b))
	require.Equal(t, float32(0), Distance(a, a))
}

func TestRotate(t *testing.T) {
	tr := NewTransform3D(Vec3{0, 1, 0}, Vec3{})
	Rotate(tr, 90, 0, 0)

	if diff := cmp.Diff(Vec3{0, 0, 1}, tr.Position(), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Fatalf("rotated position (-want +got):\n%s", diff)
	}
}
