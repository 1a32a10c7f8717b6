package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

func newRandomCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				q, err := rt.Quotes.ShowRandom(ctx)
				if err != nil {
					return err
				}

				printQuote(cmd.OutOrStdout(), q)

				return nil
			})
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text> <category>",
		Short: "Add a quote",
		Long: `Add a quote to the local list. With remote.submit_on_add set, the quote is
sent to the remote collection first; if that fails it is kept local-only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				q, err := rt.Quotes.AddQuote(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				printQuote(cmd.OutOrStdout(), q)

				return nil
			})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes in a category",
		Long:  "List quotes in --category, or in the selected category when the flag is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				var quotes domain.QuoteList
				if category == "" {
					category, quotes = rt.Quotes.FilteredQuotes(ctx)
				} else {
					quotes = rt.Quotes.ListByCategory(ctx, category)
				}

				return printQuotes(cmd.OutOrStdout(), category, quotes)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to list (\""+domain.AllCategories+"\" for everything)")

	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories, marking the selected one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				selected := rt.Quotes.SelectedCategory(ctx)
				out := cmd.OutOrStdout()

				for _, c := range rt.Quotes.Categories(ctx) {
					marker := " "
					if c == selected {
						marker = "*"
					}

					fmt.Fprintf(out, "%s %s\n", marker, c)
				}

				return nil
			})
		},
	}
}

func newSelectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <category>",
		Short: "Persist the selected category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Quotes.SelectCategory(ctx, args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", args[0])

				return nil
			})
		},
	}
}

func printQuote(w io.Writer, q domain.Quote) {
	fmt.Fprintf(w, "%q\n  [%s]%s\n", q.Text, q.Category, idSuffix(q))
}

func printQuotes(w io.Writer, category string, quotes domain.QuoteList) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "# %s (%d)\n", category, len(quotes))
	fmt.Fprintln(tw, "ID\tCATEGORY\tTEXT")

	for _, q := range quotes {
		id := "-"
		if q.HasID() {
			id = fmt.Sprint(*q.ID)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, q.Category, q.Text)
	}

	return tw.Flush()
}

func idSuffix(q domain.Quote) string {
	if !q.HasID() {
		return " local"
	}

	return fmt.Sprintf(" #%d", *q.ID)
}
