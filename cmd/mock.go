package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"badger-probe/core/config"
	"badger-probe/core/database"
	"badger-probe/core/server"
	"badger-probe/core/storage"
	"badger-probe/feature/mockserver"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mockCmd represents the mock command
var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Start the mock BadgerMaps API server",
	Long: `Starts an HTTP server under /api/2 that answers every endpoint the checks exercise
from canned JSON fixtures. Fixtures are read on every request from the embedded set,
a directory, an object storage bucket or a database table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		applyMockFlags(cmd, &cfg.Mock)
		if !cfg.Mock.IsValidFixtureSource() {
			return fmt.Errorf("unknown fixture source %q", cfg.Mock.Fixtures)
		}

		src, err := newFixtureSource(cfg)
		if err != nil {
			return err
		}

		missing, err := mockserver.Missing(cmd.Context(), src)
		if err != nil {
			return fmt.Errorf("failed to inspect fixtures: %w", err)
		}
		if len(missing) > 0 {
			fmt.Printf("%s %d fixtures missing from %s\n", color.YellowString("Warning:"), len(missing), src.Name())
			logg.Warn("Fixtures missing, affected endpoints will answer 500",
				zap.String("source", src.Name()), zap.Strings("missing", missing))
		}

		app, err := mockserver.NewApp(src, logg)
		if err != nil {
			return fmt.Errorf("failed to build mock server: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(":" + cfg.Mock.Port)
		}()

		fmt.Printf("Mock BadgerMaps API server listening on port %s\n", color.GreenString(cfg.Mock.Port))
		fmt.Printf("Base URL: %s\n", color.CyanString("http://localhost:%s%s", cfg.Mock.Port, mockserver.BasePath))
		fmt.Printf("Fixtures: %s\n", src.Name())
		fmt.Println("Available endpoints:")
		for _, e := range mockserver.Endpoints {
			fmt.Printf("  %s\n", e)
		}

		// Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("mock server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down mock server...")
		return app.Shutdown()
	},
}

// seedCmd represents the mock seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the embedded fixtures to a bucket or database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		to, _ := cmd.Flags().GetString("to")
		n, err := seed(cmd.Context(), cfg, to, logg)
		if err != nil {
			return err
		}

		fmt.Printf("Seeded %d fixtures to %s... %s\n", n, to, color.GreenString("OK"))
		return nil
	},
}

func applyMockFlags(cmd *cobra.Command, cfg *server.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("fixtures") {
		cfg.Fixtures, _ = cmd.Flags().GetString("fixtures")
	}
	if cmd.Flags().Changed("fixtures-dir") {
		cfg.FixturesDir, _ = cmd.Flags().GetString("fixtures-dir")
	}
}

func newFixtureSource(cfg *config.Config) (mockserver.Source, error) {
	switch cfg.Mock.Fixtures {
	case server.FixturesDir:
		return mockserver.NewDirSource(cfg.Mock.FixturesDir), nil
	case server.FixturesBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return mockserver.NewBucketSource(client, cfg.Storage.Bucket, cfg.Storage.Prefix), nil
	case server.FixturesDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		return mockserver.NewDatabaseSource(db), nil
	default:
		return mockserver.NewEmbeddedSource(), nil
	}
}

func seed(ctx context.Context, cfg *config.Config, to string, logg *zap.Logger) (int, error) {
	switch to {
	case server.FixturesBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return 0, fmt.Errorf("failed to create storage client: %w", err)
		}
		return mockserver.SeedBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
	case server.FixturesDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return 0, fmt.Errorf("database connection required: %w", err)
		}
		return mockserver.SeedDatabase(ctx, db, logg)
	default:
		return 0, fmt.Errorf("unknown seed target %q (want %s or %s)", to, server.FixturesBucket, server.FixturesDatabase)
	}
}

func init() {
	RootCmd.AddCommand(mockCmd)
	mockCmd.AddCommand(seedCmd)

	mockCmd.Flags().String("port", "8080", "Port to listen on")
	mockCmd.Flags().String("fixtures", server.FixturesEmbedded, "Fixture source: embedded, dir, bucket or database")
	mockCmd.Flags().String("fixtures-dir", "json", "Directory read by the dir fixture source")

	seedCmd.Flags().String("to", "", "Seed target: bucket or database")
	_ = seedCmd.MarkFlagRequired("to")
}
