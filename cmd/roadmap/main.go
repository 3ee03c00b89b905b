package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/roadmap/internal/cli"
	"github.com/alexanderramin/roadmap/internal/config"
	"github.com/alexanderramin/roadmap/internal/db"
	"github.com/alexanderramin/roadmap/internal/repository"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Use-case events are opt-in so they don't interleave with the TUI.
	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", "path", cfg.DB.Path)

	// Wire repositories and the unit of work for transactional writes
	itemRepo := repository.NewSQLiteItemRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedule: service.NewScheduleService(itemRepo, phaseRepo, milestoneRepo, uow, observers...),
		Import:   service.NewImportService(uow, observers...),
		Config:   cfg,
		Logger:   logger,
	}

	// Without a terminal the root command prints help instead of opening the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
