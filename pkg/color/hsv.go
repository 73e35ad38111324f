package color

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/gamemath/pkg/mathf"
)

// RGBToHSV converts the RGB channels of c. Alpha is ignored.
// Black reports zero hue and saturation, grays report zero hue.
func RGBToHSV(c Color) (h, s, v float32) {
	maxC := math32.Max(c.R, math32.Max(c.G, c.B))
	minC := math32.Min(c.R, math32.Min(c.G, c.B))
	diff := maxC - minC

	v = maxC
	if maxC == 0 {
		return 0, 0, v
	}
	s = diff / maxC
	if diff == 0 {
		return 0, s, v
	}

	switch maxC {
	case c.R:
		h = (c.G - c.B) / diff
	case c.G:
		h = (c.B-c.R)/diff + 2
	default:
		h = (c.R-c.G)/diff + 4
	}

	h /= 6
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h, s, v
}

// HSVToRGB builds an opaque color. Hue outside [0, 1) wraps.
func HSVToRGB(h, s, v float32) Color {
	if s == 0 {
		return Color{v, v, v, 1}
	}

	h = mathf.Repeat(h, 1) * 6
	sector := math32.Floor(h)
	f := h - sector

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) {
	case 0, 6:
		return Color{v, t, p, 1}
	case 1:
		return Color{q, v, p, 1}
	case 2:
		return Color{p, v, t, 1}
	case 3:
		return Color{p, q, v, 1}
	case 4:
		return Color{t, p, v, 1}
	default:
		return Color{v, p, q, 1}
	}
}

// HSV returns c as (h, s, v).
func HSV(c Color) mgl32.Vec3 {
	h, s, v := RGBToHSV(c)
	return mgl32.Vec3{h, s, v}
}

// SetHSV replaces the RGB channels of c with hsv, keeping c's alpha.
func SetHSV(c Color, hsv mgl32.Vec3) Color {
	out := HSVToRGB(hsv[0], hsv[1], hsv[2])
	out.A = c.A
	return out
}

// SetHSVf is SetHSV with separate channels.
func SetHSVf(c Color, h, s, v float32) Color {
	return SetHSV(c, mgl32.Vec3{h, s, v})
}

// SetHue keeps saturation, value and alpha of c and replaces the hue.
func SetHue(c Color, hue float32) Color {
	hsv := HSV(c)
	hsv[0] = hue
	return SetHSV(c, hsv)
}

// SetSaturation keeps hue, value and alpha of c and replaces the saturation.
func SetSaturation(c Color, saturation float32) Color {
	hsv := HSV(c)
	hsv[1] = saturation
	return SetHSV(c, hsv)
}

// SetValue keeps hue, saturation and alpha of c and replaces the value.
func SetValue(c Color, value float32) Color {
	hsv := HSV(c)
	hsv[2] = value
	return SetHSV(c, hsv)
}
