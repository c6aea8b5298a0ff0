// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sgrams/report"
)

func newExportCmd(a *app) *cobra.Command {
	var flags struct {
		format string
		output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the complete catalog as a Markdown document or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var write func(io.Writer) error
			switch flags.format {
			case "markdown", "md":
				write = func(w io.Writer) error { return report.MarkdownDocument(w, a.eng.Structures()) }
			case "yaml", "yml":
				write = func(w io.Writer) error { return report.YAML(w, a.eng.Structures()) }
			default:
				return fmt.Errorf("export: unknown format %q (want markdown or yaml)", flags.format)
			}

			if flags.output == "" || flags.output == "-" {
				return write(cmd.OutOrStdout())
			}

			f, err := os.Create(flags.output)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			defer func() {
				if cerr := f.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("export: %w", cerr)
				}
			}()
			if err := write(f); err != nil {
				return err
			}
			a.log.Info("exported", zap.String("format", flags.format), zap.String("path", flags.output))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flags.output)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "markdown", "Export format: markdown or yaml")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}
