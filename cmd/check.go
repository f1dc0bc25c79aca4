package cmd

import (
	"github.com/spf13/cobra"
)

var checkExcludeFlags []string
var checkParallelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check [paths...]",
		Short:        "Check functions for required banner comments",
		Long:         checkLongDescription,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args, checkExcludeFlags, checkParallelFlag)
		},
	}

	cmd.Flags().StringArrayVarP(&checkExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 0, "number of parallel workers for scanning")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
