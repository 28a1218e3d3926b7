// Package main provides the codecompanion API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kamilpajak/codecompanion/internal/config"
	"github.com/kamilpajak/codecompanion/internal/database"
	"github.com/kamilpajak/codecompanion/internal/logger"
	"github.com/kamilpajak/codecompanion/internal/server"
)

var migrateOnly bool

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Run the codecompanion API server",
	Long:          `Serves the notes, code and roadmap assistants over HTTP. Settings come from the environment and an optional .env file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&migrateOnly, "migrate", false, "Run migrations and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer log.Sync()

	if migrateOnly {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required with --migrate")
		}
		log.Info("running database migrations")
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Info("migrations complete")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.ListenAndServe(ctx)
}
