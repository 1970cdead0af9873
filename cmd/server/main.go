// Package main implements the entry point for the podcast API server,
// which serves the podcast catalog and listener accounts over HTTP and
// manages the database schema.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/podcast-api/internal/platform/sqlstore"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newRootCommand builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "podcast-api",
		Usage: "Podcast catalog and account API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (YAML, TOML or JSON)",
				Sources: cli.EnvVars("PODCAST_CONFIG_FILE"),
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply pending migrations before serving",
			},
		},
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	sub := func(name, usage string) *cli.Command {
		return &cli.Command{
			Name:  name,
			Usage: usage,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runMigrate(ctx, cmd.String("config"), name)
			},
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			sub(sqlstore.MigrateUp, "Apply all pending migrations"),
			sub(sqlstore.MigrateDown, "Roll back the most recent migration"),
			sub(sqlstore.MigrateStatus, "Show the status of every migration"),
			sub(sqlstore.MigrateVersion, "Show the current schema version"),
		},
	}
}

// serve runs the server until SIGINT or SIGTERM.
func serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap(ctx, cmd.String("config"))
	if err != nil {
		return err
	}
	defer deps.close()

	if cmd.Bool("migrate") {
		if err := sqlstore.Migrate(ctx, deps.db, deps.config.Database.Driver, sqlstore.MigrateUp, deps.logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(deps.config, deps.logger, deps.db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// runMigrate applies a single migration command against the configured database.
func runMigrate(ctx context.Context, configFile, command string) error {
	deps, err := bootstrap(ctx, configFile)
	if err != nil {
		return err
	}
	defer deps.close()

	return sqlstore.Migrate(ctx, deps.db, deps.config.Database.Driver, command, deps.logger)
}
