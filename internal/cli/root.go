package cli

import (
	"github.com/alexanderramin/examseat/internal/config"
	"github.com/alexanderramin/examseat/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Seating service.SeatingService
	Runs    service.RunService

	// Config is resolved before any subcommand runs.
	Config *config.Config
	// Init wires services from the resolved config. Nil when the services
	// are already set, as in tests.
	Init func(cfg *config.Config) error
}

// NewRootCmd creates the top-level "examseat" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "examseat",
		Short:         "Exam seating planner",
		Long:          "Allocate students to exam rooms from timetable, enrollment and room capacity CSV files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.WithFlags(cmd.Flags()))
			if err != nil {
				return err
			}
			app.Config = cfg
			if app.Init != nil {
				return app.Init(cfg)
			}
			return nil
		},
	}

	root.PersistentFlags().String("db", "", "SQLite database path (default ~/.examseat/examseat.db)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "Log format: console or json (default console on a terminal)")

	root.AddCommand(
		newAllocateCmd(app),
		newClashesCmd(app),
		newRoomsCmd(app),
		newRunsCmd(app),
	)

	return root
}

// runConfig returns the buffer and mode resolved for this invocation.
func (a *App) runConfig() (int, string) {
	if a.Config == nil {
		return 0, "dense"
	}
	return a.Config.Buffer, a.Config.Mode
}
