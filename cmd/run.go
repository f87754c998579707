package cmd

import (
	"fmt"
	"os"
	"time"

	"badger-probe/core/httpclient"
	"badger-probe/feature/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [check...]",
	Short: "Run all or some of the checks",
	Long: `Runs the named checks in their fixed order, or every check when none is named.
Use "badger-probe checks" to list the available names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd, args)
	},
}

func addRunFlags(cmd *cobra.Command) {
	defaults := probe.DefaultParams()
	cmd.Flags().Int("customer-id", defaults.CustomerID, "Customer used by the detail, update and check-in checks")
	cmd.Flags().Int("route-id", defaults.RouteID, "Route used by the route detail check")
	cmd.Flags().String("query", defaults.Query, "Search term used by the user search check")
	cmd.Flags().Bool("strict", false, "Fail on unexpected statuses or absent fields")
	cmd.Flags().Bool("json", false, "Save the run report as JSON")
}

func paramsFromFlags(cmd *cobra.Command) probe.Params {
	p := probe.DefaultParams()
	p.CustomerID, _ = cmd.Flags().GetInt("customer-id")
	p.RouteID, _ = cmd.Flags().GetInt("route-id")
	p.Query, _ = cmd.Flags().GetString("query")
	return p
}

func runSuite(cmd *cobra.Command, names []string) error {
	checks, err := probe.Select(probe.Catalog(paramsFromFlags(cmd)), names)
	if err != nil {
		return err
	}

	cfg, logg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	client, err := httpclient.New(cfg.Target, logg, nil)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	runner := probe.NewRunner(client, os.Stdout, logg, probe.Options{Strict: strict})
	report, runErr := runner.Run(cmd.Context(), checks)

	if jsonOutput && report != nil {
		filename := fmt.Sprintf("probe_report_%d.json", time.Now().Unix())
		if err := report.WriteJSON(filename); err != nil {
			logg.Error("Failed to save report", zap.Error(err))
		} else {
			logg.Info("Run report saved", zap.String("file", filename), zap.Int("steps", len(report.Results)))
		}
	}

	return wrapUnreachable(client, runErr)
}

func init() {
	RootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}
