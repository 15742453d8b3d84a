package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/cli/formatter"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/spf13/cobra"
)

func newAllocateCmd(a *App) *cobra.Command {
	var inputDir string
	var noSave, noExport bool

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Seat every scheduled exam and write the output sheets",
		Example: `  examseat allocate --input ./data
  examseat allocate --input ./data --buffer 2 --mode sparse --out ./plan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, modeStr := a.runConfig()
			mode, err := domain.ParseMode(modeStr)
			if err != nil {
				return err
			}

			req := app.NewAllocateRequest(inputDir)
			req.Buffer = buffer
			req.Mode = mode
			req.Save = !noSave
			req.Export = !noExport
			if a.Config != nil {
				req.OutputDir = a.Config.OutputDir
				req.MetricsFile = a.Config.MetricsFile
			}

			resp, err := a.Seating.Allocate(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAllocateResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory holding the input CSV files")
	cmd.Flags().Int("buffer", 0, "Seats held back in every room")
	cmd.Flags().String("mode", "dense", "Seating mode: dense or sparse")
	cmd.Flags().StringP("out", "o", "output", "Directory the output sheets are written to")
	cmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the run in the database")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Do not write output files")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
