// Package color converts engine colors between RGB and HSV.
//
// HSV triples are returned as mgl32.Vec3{h, s, v} with every channel in
// [0, 1]; a hue of 1 is a full turn and wraps back to 0.
package color

import (
	stdcolor "image/color"

	"github.com/zeusync/gamemath/pkg/mathf"
)

// Color is a float RGBA color with channels nominally in [0, 1].
type Color struct {
	R, G, B, A float32
}

var _ stdcolor.Color = Color{}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Clear = Color{}
)

// New returns a color with the given channels.
func New(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromStd converts any image/color value, dropping premultiplication.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
	return Color{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

// RGBA implements image/color.Color. Channels are clamped to [0, 1] and
// premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := mathf.Clamp01(c.A)
	r = to16(mathf.Clamp01(c.R) * alpha)
	g = to16(mathf.Clamp01(c.G) * alpha)
	b = to16(mathf.Clamp01(c.B) * alpha)
	a = to16(alpha)
	return
}

// NRGBA returns the 8-bit straight alpha form of c.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Lerp blends every channel, alpha included.
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: mathf.Lerp(a.R, b.R, t),
		G: mathf.Lerp(a.G, b.G, t),
		B: mathf.Lerp(a.B, b.B, t),
		A: mathf.Lerp(a.A, b.A, t),
	}
}

func to16(x float32) uint32 {
	return uint32(mathf.Round(x * 0xffff))
}

func to8(x float32) uint8 {
	return uint8(mathf.Round(mathf.Clamp01(x) * 0xff))
}
