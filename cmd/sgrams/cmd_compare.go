// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [index...]",
		Short: "Compare patterns and Catalan growth across S-Grams (all when no index is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := atoi("index", arg)
				if err != nil {
					return err
				}
				indices = append(indices, n)
			}

			rep, err := a.eng.Compare(indices...)
			if err != nil {
				return err
			}
			structs := make([]*catalog.Structure, 0, len(rep.Indices))
			for _, i := range rep.Indices {
				s, err := a.eng.Structure(i)
				if err != nil {
					return err
				}
				structs = append(structs, s)
			}
			c := compare.New(structs)
			if err := c.VerifyCatalanGrowth(); err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Comparison(rep, c.Growth()))
			return err
		},
	}
}
