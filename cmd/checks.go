package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"badger-probe/feature/probe"

	"github.com/spf13/cobra"
)

// checksCmd represents the checks command
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the available checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range probe.Catalog(probe.DefaultParams()) {
			var lines []string
			for _, s := range c.Steps {
				req, err := s.Request.Resolve()
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s %s", req.Method, req.Path)
				if q := s.Request.RawQuery(); q != "" {
					line += "?" + q
				}
				lines = append(lines, fmt.Sprintf("%s -> %d", line, s.Expect))
			}
			fmt.Fprintf(w, "%s\t%s\n", c.Name, strings.Join(lines, ", "))
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(checksCmd)
}
