package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/examseat/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClashesCmd(a *App) *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "clashes",
		Short: "List students enrolled in two exams of the same slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Seating.Clashes(context.Background(), inputDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClashes(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory holding the input CSV files")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
