package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/pkg/transform"
	"github.com/zeusync/gamemath/pkg/vector"
)

func (a *app) transformCommand() *cobra.Command {
	var (
		posX, posY, posZ       float32
		angleX, angleY, angleZ float32
		rotate                 []float32
	)

	cmd := &cobra.Command{
		Use:   "transform px py pz ex ey ez",
		Short: "Apply per-axis setters to a transform and print position and euler angles",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			if len(rotate) != 0 && len(rotate) != 3 {
				return fmt.Errorf("%w: --rotate needs x,y,z", ErrArgs)
			}

			t := transform.NewTransform3D(
				vector.Vec3{vals[0], vals[1], vals[2]},
				vector.Vec3{vals[3], vals[4], vals[5]},
			)

			setters := []struct {
				flag  string
				value float32
				set   func(transform.Transform, float32)
			}{
				{"pos-x", posX, transform.SetPosX},
				{"pos-y", posY, transform.SetPosY},
				{"pos-z", posZ, transform.SetPosZ},
				{"angle-x", angleX, transform.SetAngleX},
				{"angle-y", angleY, transform.SetAngleY},
				{"angle-z", angleZ, transform.SetAngleZ},
			}
			for _, s := range setters {
				if cmd.Flags().Changed(s.flag) {
					s.set(t, s.value)
				}
			}
			if len(rotate) == 3 {
				transform.Rotate(t, rotate[0], rotate[1], rotate[2])
			}

			pos, euler := t.Position(), t.EulerAngles()
			return a.emit(cmd, append(pos[:], euler[:]...)...)
		},
	}

	flags := cmd.Flags()
	flags.Float32Var(&posX, "pos-x", 0, "set position x")
	flags.Float32Var(&posY, "pos-y", 0, "set position y")
	flags.Float32Var(&posZ, "pos-z", 0, "set position z")
	flags.Float32Var(&angleX, "angle-x", 0, "set euler angle x")
	flags.Float32Var(&angleY, "angle-y", 0, "set euler angle y")
	flags.Float32Var(&angleZ, "angle-z", 0, "set euler angle z")
	flags.Float32SliceVar(&rotate, "rotate", nil, "rotate the position by x,y,z degrees after the setters")
	return cmd
}
