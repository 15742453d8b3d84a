package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/examseat/internal/cli"
	"github.com/alexanderramin/examseat/internal/config"
	"github.com/alexanderramin/examseat/internal/db"
	"github.com/alexanderramin/examseat/internal/logging"
	"github.com/alexanderramin/examseat/internal/report"
	"github.com/alexanderramin/examseat/internal/repository"
	"github.com/alexanderramin/examseat/internal/seating"
	"github.com/alexanderramin/examseat/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		database *sql.DB
		logger   *zap.Logger
	)
	defer func() {
		if database != nil {
			database.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	app := &cli.App{}
	app.Init = func(cfg *config.Config) error {
		var err error
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}

		database, err = db.OpenDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		// Wire repositories
		runRepo := repository.NewSQLiteRunRepo(database)
		allocRepo := repository.NewSQLiteAllocationRepo(database)
		diagRepo := repository.NewSQLiteDiagnosticRepo(database)

		// Wire unit of work for transactional operations
		uow := db.NewSQLiteUnitOfWork(database)

		engine := seating.NewEngine(seating.WithLogger(logger.Named("engine")))
		exporter := report.NewExporter(logger.Named("export"))
		observer := service.NewLogUseCaseObserver(logger.Named("usecase"))

		app.Seating = service.NewSeatingService(engine, exporter, uow, logger, observer)
		app.Runs = service.NewRunService(runRepo, allocRepo, diagRepo)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
