package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local list with the remote collection",
		Long: `Fetch the remote batch and merge it into the local list. Remote records
replace local ones with the same ID; new ones are appended. An unreachable
remote leaves the list untouched and reports "degraded".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				report, err := rt.Sync.Sync(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d updated, %d added\n", report.Result, report.Updated, report.Added)

				return nil
			})
		},
	}
}

func newPushCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Submit local-only quotes to the remote collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				report, err := rt.Quotes.PushLocal(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d pending, %d submitted, %d failed\n",
					report.Pending, report.Submitted, report.Failed)

				return nil
			})
		},
	}
}
