package cmd

import (
	"fmt"
	"strconv"

	"github.com/mhelling/podfit/core"
	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/internal/outwriter"
	"github.com/spf13/cobra"
)

// planCmd shows the pod size breakdown for a player count.
var planCmd = &cobra.Command{
	Use:   "plan <total>",
	Short: "Show the pod size breakdown for a player count.",
	Long: `Compute how a given number of players splits into pods of 3-5.

No roster is read. This answers "if N people show up, what tables do we set
up?" before anyone has submitted power ratings.

Examples:
  # Ten players split into two pods
  podfit plan 10

  # Machine-readable breakdown
  podfit plan 23 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		total, err := strconv.Atoi(args[0])
		if err != nil || total < 0 {
			contract.LogFatal("Cannot plan pods", fmt.Errorf("invalid total %q: expected a non-negative number", args[0]))
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WritePlan(total, core.PlanPodSizes(total), cfg); err != nil {
			contract.LogFatal("Cannot write plan", err)
		}
	},
}
