// Package demo holds the simulation behind cmd/vecdemo. It has no
// rendering dependency so it can be stepped in tests.
package demo

import (
	"github.com/chewxy/math32"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/pkg/color"
	"github.com/zeusync/gamemath/pkg/mathf"
	"github.com/zeusync/gamemath/pkg/transform"
	"github.com/zeusync/gamemath/pkg/vector"
)

// Scene is a rotating arrow whose length pulses inside a clamped band,
// and a point cloud orbiting under a camera transform. Colors cycle
// through the hue wheel.
type Scene struct {
	cfg config.DemoConfig

	dir   vector.Vec2
	arrow vector.Vec2
	phase float32

	camera *transform.Transform3D
	cloud  []vector.Vec3

	hue    float32
	tint   color.Color
	ticks  int
	paused bool
}

// NewScene seeds the point cloud from r. A nil r uses the process-wide source.
func NewScene(cfg config.DemoConfig, r *vector.Rand) *Scene {
	s := &Scene{
		cfg:    cfg,
		dir:    vector.Vec2{0, 1},
		camera: transform.NewTransform3D(vector.Vec3{}, vector.Vec3{}),
		cloud:  make([]vector.Vec3, cfg.Points),
		tint:   color.New(1, 0, 0, 0.9),
	}

	radius := cfg.MaxMagnitude
	lo, hi := vector.Vec3{-radius, -radius, -radius}, vector.Vec3{radius, radius, radius}
	for i := range s.cloud {
		p := vector.RandomRangeWith(r, lo, hi)
		vector.Limit(&p, radius)
		s.cloud[i] = p
	}
	s.updateArrow()
	return s
}

// Step advances the scene by one tick unless paused.
func (s *Scene) Step() {
	if s.paused {
		return
	}
	s.ticks++

	vector.Rotate2(&s.dir, s.cfg.RotationSpeed)
	s.phase = mathf.Repeat(s.phase+s.cfg.RotationSpeed*mathf.Deg2Rad, 2*math32.Pi)
	s.updateArrow()

	euler := s.camera.EulerAngles()
	transform.SetAngleY(s.camera, mathf.Repeat(euler[1]+s.cfg.RotationSpeed, 360))
	transform.SetAngleX(s.camera, mathf.Repeat(euler[0]+s.cfg.RotationSpeed/2, 360))

	s.hue = mathf.Repeat(s.hue+s.cfg.HueSpeed, 1)
	s.tint = color.SetHue(s.tint, s.hue)
}

// updateArrow stretches the direction to a pulsing length, overshooting
// both ends of the band so the clamp is visible.
func (s *Scene) updateArrow() {
	length := mathf.Map(math32.Sin(s.phase), -1, 1, s.cfg.MinMagnitude/2, s.cfg.MaxMagnitude*1.5, false)
	arrow := s.dir
	vector.SetMagnitude(&arrow, length)
	s.arrow = vector.ClampMagnitude(arrow, s.cfg.MinMagnitude, s.cfg.MaxMagnitude)
}

func (s *Scene) TogglePause()      { s.paused = !s.paused }
func (s *Scene) Paused() bool      { return s.paused }
func (s *Scene) Ticks() int        { return s.ticks }
func (s *Scene) Hue() float32      { return s.hue }
func (s *Scene) Tint() color.Color { return s.tint }

// Arrow returns the clamped arrow in world units, y up.
func (s *Scene) Arrow() vector.Vec2 { return s.arrow }

// Heading is the arrow direction in degrees, 0 pointing up.
func (s *Scene) Heading() float32 { return vector.Rotation2(s.arrow) }

// Points projects the cloud through the camera onto the xy plane,
// snapped to whole pixels.
func (s *Scene) Points() []vector.Vec2 {
	euler := s.camera.EulerAngles()
	out := make([]vector.Vec2, len(s.cloud))
	for i, p := range s.cloud {
		vector.Rotate3Euler(&p, euler)
		out[i] = vector.Round(vector.XY(p))
	}
	return out
}

// PointColor spreads the points around the hue wheel from the current tint.
// Points further from the camera are darker.
func (s *Scene) PointColor(i int) color.Color {
	offset := float32(i) / float32(max(len(s.cloud), 1))
	c := color.SetHue(s.tint, mathf.Repeat(s.hue+offset, 1))

	p := s.cloud[i]
	vector.Rotate3Euler(&p, s.camera.EulerAngles())
	depth := mathf.Map(p[2], -s.cfg.MaxMagnitude, s.cfg.MaxMagnitude, 1, 0.35, true)
	return color.SetValue(c, depth)
}
