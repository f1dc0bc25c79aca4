// Package cmd provides the root command and CLI setup for bannerfmt.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	"github.com/mouse-blink/bannerfmt/internal/controller"
	"github.com/mouse-blink/bannerfmt/internal/domain"
	m "github.com/mouse-blink/bannerfmt/internal/model"
)

const defaultReportsDir = ".bannerfmt-reports"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

var reportsDirFlag string
var rootExcludeFlags []string
var rootParallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bannerfmt [paths...]",
		Short:        "Python function banner format checker",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args, rootExcludeFlags, rootParallelFlag)
		},
	}

	cmd.PersistentFlags().StringVar(&reportsDirFlag, "reports", "", "directory for scan reports (default \".bannerfmt-reports\")")
	cmd.Flags().StringArrayVarP(&rootExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&rootParallelFlag, "parallel", "p", 0, "number of parallel workers for scanning")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runCheck is shared by the root command and the check subcommand.
func runCheck(args []string, exclude []string, workers int) error {
	checkArgs, err := resolveCheckArgs(args, exclude, workers)
	if err != nil {
		return err
	}

	count, err := workflow.Check(checkArgs)
	if err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("found %d function(s) not following the required format", count)
	}

	return nil
}

// resolveCheckArgs merges command-line flags with the optional
// bannerfmt.toml config. Flags win; config fills whatever the user did
// not set.
func resolveCheckArgs(args []string, exclude []string, workers int) (domain.CheckArgs, error) {
	cfg, _, err := adapter.LoadConfig(".")
	if err != nil {
		return domain.CheckArgs{}, err
	}

	return domain.CheckArgs{
		Paths:   parsePaths(args),
		Exclude: mergeExcludes(cfg, exclude),
		Workers: resolveWorkers(cfg, workers),
		Reports: resolveReportsDir(cfg),
	}, nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func mergeExcludes(cfg adapter.Config, flags []string) []string {
	merged := make([]string, 0, len(cfg.Check.Exclude)+len(flags))
	merged = append(merged, cfg.Check.Exclude...)
	merged = append(merged, flags...)

	return merged
}

func resolveWorkers(cfg adapter.Config, flag int) int {
	if flag > 0 {
		return flag
	}

	return cfg.Check.Workers
}

func resolveReportsDir(cfg adapter.Config) m.Path {
	if reportsDirFlag != "" {
		return m.Path(reportsDirFlag)
	}

	if cfg.Reports.Dir != "" {
		return m.Path(cfg.Reports.Dir)
	}

	return defaultReportsDir
}
