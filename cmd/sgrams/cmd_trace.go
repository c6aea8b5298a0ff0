// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sgrams/trace"
)

func newTraceCmd(a *app) *cobra.Command {
	var flags struct {
		steps   int
		pattern string
		reverse bool
	}

	cmd := &cobra.Command{
		Use:   "trace <index> <state>",
		Short: "Follow a state through a pattern for a number of steps",
		Long: "trace walks a state along one pattern: forward applies resolve,\n" +
			"--reverse applies inform. Without --pattern the primary pattern is used;\n" +
			"without --steps the configured trace.default_steps applies. Requests\n" +
			"above trace.max_steps are rejected.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := atoi("index", args[0])
			if err != nil {
				return err
			}
			start, err := atoi("state", args[1])
			if err != nil {
				return err
			}
			steps := a.cfg.Trace.DefaultSteps
			if cmd.Flags().Changed("steps") {
				steps = flags.steps
			}
			if err := trace.CheckSteps(steps, a.cfg.Trace.MaxSteps); err != nil {
				return err
			}

			key := flags.pattern
			if key == "" {
				if key, err = a.eng.PrimaryKey(index); err != nil {
					return err
				}
			}
			path, err := a.eng.TracePath(index, start, steps, key, flags.reverse)
			if err != nil {
				return err
			}
			s, err := a.eng.Structure(index)
			if err != nil {
				return err
			}
			a.log.Debug("traced", zap.Int("index", index), zap.String("pattern", key), zap.Int("length", len(path)))

			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Trace(s, key, path, trace.FromReverse(flags.reverse)))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.steps, "steps", "n", 0, "Number of steps (default from config)")
	f.StringVarP(&flags.pattern, "pattern", "p", "", "Divisor key such as 1/7 (default: primary pattern)")
	f.BoolVarP(&flags.reverse, "reverse", "r", false, "Walk backward with inform")

	return cmd
}
