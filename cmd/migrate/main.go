package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/migration"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back every migration
// - steps:   apply (or with a negative -n, roll back) n migrations
// - goto:    migrate to -version
// - version: print the applied version
// - force:   record -version without running it, to repair a dirty database

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(subcommand string, args []string) error {
	fs := flag.NewFlagSet(subcommand, flag.ExitOnError)
	databaseURL := fs.String("database", "", "Postgres URL; defaults to migration.databaseUrl from config")
	source := fs.String("path", "", "Migration source URL such as file://migrations; defaults to the embedded files")
	steps := fs.Int("n", 1, "Number of steps for the steps subcommand")
	version := fs.Int("version", -1, "Target version for goto and force")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	migrationCfg := &config.MigrationConfig{}
	if cfg.Migration != nil {
		*migrationCfg = *cfg.Migration
	}
	if *databaseURL != "" {
		migrationCfg.DatabaseURL = *databaseURL
	}
	if *source != "" {
		migrationCfg.Path = *source
	}

	m, err := migration.New(migrationCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			logger.Error("Failed to close migrator", slog.Any("error", closeErr))
		}
	}()

	switch subcommand {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "steps":
		return m.Steps(*steps)
	case "goto":
		if *version < 0 {
			return errors.New("goto requires -version")
		}

		return m.GoTo(uint(*version))
	case "force":
		if *version < 0 {
			return errors.New("force requires -version")
		}

		return m.Force(*version)
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|steps|goto|version|force> [-database URL] [-path URL] [-n N] [-version V]")
}
