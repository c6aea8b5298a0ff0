// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize every S-Gram in one table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.render.Summary(a.eng.Structures()))
			return err
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show one S-Gram: fraction, patterns, factors and transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := atoi("index", args[0])
			if err != nil {
				return err
			}
			s, err := a.eng.Structure(index)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Structure(s))
			return err
		},
	}
}

func newTransitionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transition <index> <state>",
		Short: "List every pattern holding a state with its inform and resolve neighbours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := atoi("index", args[0])
			if err != nil {
				return err
			}
			state, err := atoi("state", args[1])
			if err != nil {
				return err
			}
			ts, err := a.eng.Transitions(index, state)
			if err != nil {
				return err
			}
			s, err := a.eng.Structure(index)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.StateTransitions(s, state, ts))
			return err
		},
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <index>",
		Short: "Analyze the patterns of one S-Gram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := atoi("index", args[0])
			if err != nil {
				return err
			}
			rep, err := a.eng.Analyze(index)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Analysis(rep))
			return err
		},
	}
}
