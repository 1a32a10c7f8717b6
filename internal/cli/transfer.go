package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every quote as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				var buf bytes.Buffer
				if err := rt.Quotes.Export(ctx, &buf); err != nil {
					return err
				}

				if out == "" {
					_, err := cmd.OutOrStdout().Write(buf.Bytes())
					return err
				}

				if err := os.WriteFile(out, buf.Bytes(), 0o600); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}

				fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", out)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")

	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append the quotes of an exported JSON file",
		Long:  "Append every quote of the file. If any record is invalid nothing is imported.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				n, err := rt.Quotes.Import(ctx, f)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported %d quotes\n", n)

				return nil
			})
		},
	}
}
