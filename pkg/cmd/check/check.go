// Package check provides commands to verify upstream data availability from
// the command line before pointing a browser at the dashboard.
package check

import (
	"github.com/spf13/cobra"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "verify upstream data availability",
	}
	cmd.AddCommand(newScheduleCmd())
	cmd.AddCommand(newSessionCmd())
	return cmd
}
