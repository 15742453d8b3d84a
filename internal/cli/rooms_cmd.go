package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/examseat/internal/cli/formatter"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/spf13/cobra"
)

func newRoomsCmd(a *App) *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Show the room catalog with effective capacities",
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, modeStr := a.runConfig()
			mode, err := domain.ParseMode(modeStr)
			if err != nil {
				return err
			}

			resp, err := a.Seating.Rooms(context.Background(), inputDir, domain.RunConfig{Buffer: buffer, Mode: mode})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRooms(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory holding the input CSV files")
	cmd.Flags().Int("buffer", 0, "Seats held back in every room")
	cmd.Flags().String("mode", "dense", "Seating mode: dense or sparse")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
