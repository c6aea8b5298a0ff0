// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route <index> <from> <to>",
		Short: "Find the shortest resolve/inform route between two states",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n [3]int
			for i, name := range []string{"index", "from", "to"} {
				v, err := atoi(name, args[i])
				if err != nil {
					return err
				}
				n[i] = v
			}
			rt, err := a.eng.Route(cmd.Context(), n[0], n[1], n[2])
			if err != nil {
				return err
			}
			s, err := a.eng.Structure(n[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Route(s, rt))
			return err
		},
	}
}
