package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	"github.com/mouse-blink/bannerfmt/internal/domain"
)

var listExcludeFlags []string
var listParallelFlag int

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list [paths...]",
		Short:        "List source files with function and violation counts",
		Long:         listLongDescription,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, _, err := adapter.LoadConfig(".")
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: mergeExcludes(cfg, listExcludeFlags),
				Workers: resolveWorkers(cfg, listParallelFlag),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 0, "number of parallel workers for scanning")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
