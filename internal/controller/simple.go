package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

var severityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayViolations prints one line per violation in path:line:column
// form, then a per-file summary table.
func (s *SimpleUI) DisplayViolations(reports []m.FileReport) error {
	total := 0

	for _, report := range reports {
		for _, v := range report.Violations {
			s.printf("%s:%d:%d: %s: %s [%s]\n",
				report.Origin,
				v.StartLine+1,
				1,
				severityStyle.Render(string(v.Severity)),
				v.Message,
				v.Code,
			)

			total++
		}
	}

	if total == 0 {
		s.printf("All functions follow the required format\n")
		return nil
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

// DisplayCounts prints files with function and violation counts.
func (s *SimpleUI) DisplayCounts(reports []m.FileReport) error {
	if len(reports) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	s.printf("\n%s", renderCountsTable(reports))

	return nil
}

// DisplayFixes prints how many banners were inserted per file.
func (s *SimpleUI) DisplayFixes(results []m.FixResult) error {
	total := 0

	for _, result := range results {
		if result.Inserted == 0 {
			continue
		}

		s.printf("%s: inserted %d banner(s)\n", result.Origin, result.Inserted)

		total += result.Inserted
	}

	if total == 0 {
		s.printf("Nothing to fix\n")
		return nil
	}

	s.printf("Inserted %d banner(s) across %d file(s)\n", total, fixedFileCount(results))

	return nil
}

// DisplayReports renders stored reports the same way a fresh scan is
// rendered.
func (s *SimpleUI) DisplayReports(reports []m.FileReport) error {
	if len(reports) == 0 {
		s.printf("No stored reports found\n")
		return nil
	}

	return s.DisplayViolations(reports)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(reports []m.FileReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	files := 0
	total := 0

	for _, report := range reports {
		if len(report.Violations) == 0 {
			continue
		}

		table.Append([]string{string(report.Origin), fmt.Sprintf("%d", len(report.Violations))})

		files++
		total += len(report.Violations)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return buf.String()
}

func renderCountsTable(reports []m.FileReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Functions", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	functions := 0
	violations := 0

	for _, report := range reports {
		table.Append([]string{
			string(report.Origin),
			fmt.Sprintf("%d", report.Functions),
			fmt.Sprintf("%d", len(report.Violations)),
		})

		functions += report.Functions
		violations += len(report.Violations)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("%d", functions),
		fmt.Sprintf("%d", violations),
	})

	table.Render()

	return buf.String()
}

func fixedFileCount(results []m.FixResult) int {
	count := 0

	for _, result := range results {
		if result.Inserted > 0 {
			count++
		}
	}

	return count
}
