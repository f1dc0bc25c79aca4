package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	"github.com/mouse-blink/bannerfmt/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "view",
		Short:        "View previously generated scan reports",
		Long:         "View previously generated scan reports from a reports directory.",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, _, err := adapter.LoadConfig(".")
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: resolveReportsDir(cfg)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
