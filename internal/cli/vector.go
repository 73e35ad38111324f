package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/pkg/vector"
)

// vectorArgs parses 2 or 3 components and applies the matching operation.
func vectorArgs(args []string, op2 func(vector.Vec2) vector.Vec2, op3 func(vector.Vec3) vector.Vec3) ([]float32, error) {
	vals, err := parseFloats(args)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 2:
		v := op2(vector.Vec2{vals[0], vals[1]})
		return v[:], nil
	case 3:
		v := op3(vector.Vec3{vals[0], vals[1], vals[2]})
		return v[:], nil
	default:
		return nil, fmt.Errorf("%w: want 2 or 3 components, got %d", ErrArgs, len(vals))
	}
}

func (a *app) vectorCommands() []*cobra.Command {
	rotate2 := &cobra.Command{
		Use:   "rotate2 x y angle",
		Short: "Rotate a 2D vector by angle degrees",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			v := vector.Vec2{vals[0], vals[1]}
			vector.Rotate2(&v, vals[2])
			return a.emit(cmd, v[:]...)
		},
	}

	rotate3 := &cobra.Command{
		Use:   "rotate3 x y z ax ay az",
		Short: "Rotate a 3D vector around z, then x, then y",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			v := vector.Vec3{vals[0], vals[1], vals[2]}
			vector.Rotate3(&v, vals[3], vals[4], vals[5])
			return a.emit(cmd, v[:]...)
		},
	}

	rotation := &cobra.Command{
		Use:   "rotation x y",
		Short: "Heading of a 2D vector in degrees, (0, 1) being 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, vector.Rotation2(vector.Vec2{vals[0], vals[1]}))
		},
	}

	var clampMin, clampMax float32
	clamp := &cobra.Command{
		Use:   "clamp x y [z]",
		Short: "Clamp the magnitude of a vector",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := vectorArgs(args,
				func(v vector.Vec2) vector.Vec2 { return vector.ClampMagnitude(v, clampMin, clampMax) },
				func(v vector.Vec3) vector.Vec3 { return vector.ClampMagnitude(v, clampMin, clampMax) },
			)
			if err != nil {
				return err
			}
			return a.emit(cmd, out...)
		},
	}
	clamp.Flags().Float32Var(&clampMin, "min", 0, "minimum magnitude")
	clamp.Flags().Float32Var(&clampMax, "max", 1, "maximum magnitude")

	var limitMax float32
	limit := &cobra.Command{
		Use:   "limit x y [z]",
		Short: "Shorten a vector to at most --max",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := vectorArgs(args,
				func(v vector.Vec2) vector.Vec2 {
					vector.Limit(&v, limitMax)
					return v
				},
				func(v vector.Vec3) vector.Vec3 {
					vector.Limit(&v, limitMax)
					return v
				},
			)
			if err != nil {
				return err
			}
			return a.emit(cmd, out...)
		},
	}
	limit.Flags().Float32Var(&limitMax, "max", 1, "maximum magnitude")

	var strict bool
	setmag := &cobra.Command{
		Use:   "setmag x y [z] magnitude",
		Short: "Rescale a vector to the given magnitude",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseFloats(args[len(args)-1:])
			if err != nil {
				return err
			}
			var zeroErr error
			out, err := vectorArgs(args[:len(args)-1],
				func(v vector.Vec2) vector.Vec2 { return setMagnitude(v, m[0], strict, &zeroErr) },
				func(v vector.Vec3) vector.Vec3 { return setMagnitude(v, m[0], strict, &zeroErr) },
			)
			if err != nil {
				return err
			}
			if zeroErr != nil {
				return zeroErr
			}
			return a.emit(cmd, out...)
		},
	}
	setmag.Flags().BoolVar(&strict, "strict", false, "fail on a zero vector instead of printing NaN")

	round := roundingCommand(a, "round", "Round components, halves to even", vector.Round[vector.Vec2], vector.Round[vector.Vec3])
	floor := roundingCommand(a, "floor", "Floor components", vector.Floor[vector.Vec2], vector.Floor[vector.Vec3])
	ceil := roundingCommand(a, "ceil", "Ceil components", vector.Ceil[vector.Vec2], vector.Ceil[vector.Vec3])

	var (
		dims    int
		rangeLo []float32
		rangeHi []float32
	)
	random := &cobra.Command{
		Use:   "random",
		Short: "Draw a random vector, in [0,1) or in [--min, --max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dims != 2 && dims != 3 {
				return fmt.Errorf("%w: --dims must be 2 or 3", ErrArgs)
			}
			ranged := len(rangeLo) > 0 || len(rangeHi) > 0
			if ranged && (len(rangeLo) != dims || len(rangeHi) != dims) {
				return fmt.Errorf("%w: --min and --max need %d components", ErrArgs, dims)
			}

			r := a.rt.Rand
			switch {
			case dims == 2 && ranged:
				v := vector.RandomRangeWith(r, vector.Vec2{rangeLo[0], rangeLo[1]}, vector.Vec2{rangeHi[0], rangeHi[1]})
				return a.emit(cmd, v[:]...)
			case dims == 2:
				v := vector.RandomWith[vector.Vec2](r)
				return a.emit(cmd, v[:]...)
			case ranged:
				v := vector.RandomRangeWith(r,
					vector.Vec3{rangeLo[0], rangeLo[1], rangeLo[2]},
					vector.Vec3{rangeHi[0], rangeHi[1], rangeHi[2]},
				)
				return a.emit(cmd, v[:]...)
			default:
				v := vector.RandomWith[vector.Vec3](r)
				return a.emit(cmd, v[:]...)
			}
		},
	}
	random.Flags().IntVar(&dims, "dims", 3, "number of components, 2 or 3")
	random.Flags().Float32SliceVar(&rangeLo, "min", nil, "per axis lower bound")
	random.Flags().Float32SliceVar(&rangeHi, "max", nil, "per axis upper bound")

	swizzle := &cobra.Command{
		Use:   "swizzle pattern x y [z]",
		Short: "Pick components by pattern, e.g. zyx or x0y",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parsePattern(args[0])
			if err != nil {
				return err
			}
			vals, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			for _, idx := range indices {
				if idx >= len(vals) {
					return fmt.Errorf("%w: pattern %q reads past a %d component vector", ErrArgs, args[0], len(vals))
				}
			}
			if len(vals) == 2 {
				return a.emit(cmd, swizzleOf(vector.Vec2{vals[0], vals[1]}, indices)...)
			}
			return a.emit(cmd, swizzleOf(vector.Vec3{vals[0], vals[1], vals[2]}, indices)...)
		},
	}

	return []*cobra.Command{rotate2, rotate3, rotation, clamp, limit, setmag, round, floor, ceil, random, swizzle}
}

func roundingCommand(a *app, name, short string, op2 func(vector.Vec2) vector.Vec2, op3 func(vector.Vec3) vector.Vec3) *cobra.Command {
	return &cobra.Command{
		Use:   name + " x y [z]",
		Short: short,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := vectorArgs(args, op2, op3)
			if err != nil {
				return err
			}
			return a.emit(cmd, out...)
		},
	}
}

func setMagnitude[V vector.Vector](v V, m float32, strict bool, zeroErr *error) V {
	if !strict {
		vector.SetMagnitude(&v, m)
		return v
	}
	out, err := vector.WithMagnitude(v, m)
	if err != nil {
		*zeroErr = err
	}
	return out
}

func parsePattern(pattern string) ([]int, error) {
	if len(pattern) != 2 && len(pattern) != 3 {
		return nil, fmt.Errorf("%w: pattern %q must have 2 or 3 letters", ErrArgs, pattern)
	}
	indices := make([]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		idx, ok := vector.AxisIndex(pattern[i])
		if !ok {
			return nil, fmt.Errorf("%w: pattern %q has unknown axis %q", ErrArgs, pattern, pattern[i])
		}
		indices[i] = idx
	}
	return indices, nil
}

func swizzleOf[V vector.Vector](v V, indices []int) []float32 {
	if len(indices) == 2 {
		out := vector.Get2(v, indices[0], indices[1])
		return out[:]
	}
	out := vector.Get3(v, indices[0], indices[1], indices[2])
	return out[:]
}
