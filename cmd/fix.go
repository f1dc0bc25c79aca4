package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	"github.com/mouse-blink/bannerfmt/internal/domain"
)

var fixExcludeFlags []string
var fixParallelFlag int

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fix [paths...]",
		Short:        "Insert missing banner comments in place",
		Long:         fixLongDescription,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, _, err := adapter.LoadConfig(".")
			if err != nil {
				return err
			}

			return workflow.Fix(domain.FixArgs{
				Paths:   parsePaths(args),
				Exclude: mergeExcludes(cfg, fixExcludeFlags),
				Workers: resolveWorkers(cfg, fixParallelFlag),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&fixExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&fixParallelFlag, "parallel", "p", 0, "number of parallel workers for fixing")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
