package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/examseat/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRunsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded allocation runs",
	}

	cmd.AddCommand(
		newRunsListCmd(a),
		newRunsShowCmd(a),
		newRunsDeleteCmd(a),
	)

	return cmd
}

func newRunsListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := a.Runs.List(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRunList(runs, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}

func newRunsShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a run with its allocations and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.Runs.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunDetail(detail, time.Now()))
			return nil
		},
	}
}

func newRunsDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a run and everything it recorded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Runs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
			return nil
		},
	}
}
