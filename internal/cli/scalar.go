package cli

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/pkg/mathf"
)

func (a *app) scalarCommands() []*cobra.Command {
	var clamp bool
	mapCmd := &cobra.Command{
		Use:   "map value start1 stop1 start2 stop2",
		Short: "Re-map a value from one range onto another",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, mathf.Map(v[0], v[1], v[2], v[3], v[4], clamp))
		},
	}
	mapCmd.Flags().BoolVar(&clamp, "clamp", false, "keep the result inside the target range")

	step := &cobra.Command{
		Use:   "step value step",
		Short: "Snap a value to the nearest multiple of step",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, mathf.RoundToNearestStep(v[0], v[1]))
		},
	}

	return []*cobra.Command{mapCmd, step}
}
