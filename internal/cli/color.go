package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/pkg/color"
)

func parseColor(args []string) (color.Color, error) {
	vals, err := parseFloats(args)
	if err != nil {
		return color.Color{}, err
	}
	switch len(vals) {
	case 3:
		return color.RGB(vals[0], vals[1], vals[2]), nil
	case 4:
		return color.New(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return color.Color{}, fmt.Errorf("%w: want r g b [a], got %d values", ErrArgs, len(vals))
	}
}

func (a *app) colorCommands() []*cobra.Command {
	hsv := &cobra.Command{
		Use:   "hsv r g b [a]",
		Short: "Convert RGB to HSV, hue in [0, 1)",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args)
			if err != nil {
				return err
			}
			h, s, v := color.RGBToHSV(c)
			return a.emit(cmd, h, s, v)
		},
	}

	rgb := &cobra.Command{
		Use:   "rgb h s v",
		Short: "Convert HSV to an opaque RGBA color",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			c := color.HSVToRGB(vals[0], vals[1], vals[2])
			return a.emit(cmd, c.R, c.G, c.B, c.A)
		},
	}

	return []*cobra.Command{
		hsv,
		rgb,
		a.hsvSetter("sethue", "Replace the hue of a color", color.SetHue),
		a.hsvSetter("setsat", "Replace the saturation of a color", color.SetSaturation),
		a.hsvSetter("setval", "Replace the value of a color", color.SetValue),
	}
}

func (a *app) hsvSetter(name, short string, set func(color.Color, float32) color.Color) *cobra.Command {
	return &cobra.Command{
		Use:   name + " r g b a value",
		Short: short + ", keeping alpha",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[:4])
			if err != nil {
				return err
			}
			v, err := parseFloats(args[4:])
			if err != nil {
				return err
			}
			out := set(c, v[0])
			return a.emit(cmd, out.R, out.G, out.B, out.A)
		},
	}
}
