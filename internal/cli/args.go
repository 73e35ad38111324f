package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// acceptNegatives takes over flag parsing for cmd so positionals such as
// "-1.5" reach RunE instead of being read as shorthand flags. Any token that
// parses as a number is a positional; a flag that takes a value still
// consumes the next token, so "--max -2" works too.
func acceptNegatives(cmd *cobra.Command) {
	validate := cmd.Args
	if validate == nil {
		validate = cobra.ArbitraryArgs
	}
	run := cmd.RunE

	cmd.DisableFlagParsing = true
	cmd.Args = func(c *cobra.Command, args []string) error {
		// cobra skips merging persistent flags when it does not parse
		c.InheritedFlags()
		flags := c.Flags()

		flagArgs, positional := splitArgs(flags, args)
		if err := flags.Parse(append(append(flagArgs, "--"), positional...)); err != nil {
			return err
		}
		if help, _ := flags.GetBool("help"); help {
			return pflag.ErrHelp
		}
		return validate(c, flags.Args())
	}
	cmd.RunE = func(c *cobra.Command, _ []string) error {
		return run(c, c.Flags().Args())
	}
}

func splitArgs(flags *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			return flagArgs, append(positional, args[i+1:]...)
		case isNumber(s) || s == "-" || !strings.HasPrefix(s, "-"):
			positional = append(positional, s)
		default:
			flagArgs = append(flagArgs, s)
			if takesValue(flags, s) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return flagArgs, positional
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}

// takesValue reports whether s is a "--name" or "-n" flag whose value is
// the next token.
func takesValue(flags *pflag.FlagSet, s string) bool {
	if strings.Contains(s, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(s, "--"); ok {
		f = flags.Lookup(name)
	} else if len(s) == 2 {
		f = flags.ShorthandLookup(s[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
