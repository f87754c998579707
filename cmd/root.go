package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"badger-probe/core/config"
	"badger-probe/core/httpclient"
	"badger-probe/core/logger"
	"badger-probe/feature/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var baseURLFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "badger-probe",
	Short: "BadgerMaps API exerciser",
	Long: `badger-probe exercises a BadgerMaps-compatible REST API endpoint by endpoint and
prints a summary of each response. Without a subcommand it runs every check.
It also ships the mock API server the checks are written against.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd, nil)
	},
}

// unreachableError carries the origin of a target that could not be reached.
type unreachableError struct {
	origin string
	err    error
}

func (e *unreachableError) Error() string { return e.err.Error() }
func (e *unreachableError) Unwrap() error { return e.err }

// Execute runs the root command and exits with status 1 on any failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		report(RootCmd.OutOrStdout(), err)
		os.Exit(1)
	}
}

// report prints the user-facing diagnostic for err to w, after the check output,
// and logs it through the global logger set up by loadConfig.
func report(w io.Writer, err error) {
	var unreachable *unreachableError
	switch {
	case errors.As(err, &unreachable):
		fmt.Fprintln(w, "Error: Could not connect to the mock server.")
		fmt.Fprintf(w, "Make sure the server is running on %s\n", unreachable.origin)
		fmt.Fprintf(w, "Run: %s mock\n", RootCmd.Name())
	case errors.Is(err, probe.ErrChecksFailed):
		// The step summary has already been printed.
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	zap.L().Error("Command failed", zap.Error(err))
	_ = zap.L().Sync()
}

// loadConfig reads the configuration and applies the persistent flags on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.Target.BaseURL = baseURLFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

func wrapUnreachable(client *httpclient.Client, err error) error {
	if errors.Is(err, httpclient.ErrUnreachable) {
		return &unreachableError{origin: client.Origin(), err: err}
	}
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Base URL of the API under test (default from TARGET_BASE_URL or http://localhost:8080/api/2)")
	addRunFlags(RootCmd)
}
