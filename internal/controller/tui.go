package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// TUI implements UI using Bubble Tea for interactive report browsing.
// Scan, list, and fix output stays plain so those commands remain
// scriptable; only stored-report viewing is interactive.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayViolations prints one line per violation.
func (t *TUI) DisplayViolations(reports []m.FileReport) error {
	total := 0

	for _, report := range reports {
		for _, v := range report.Violations {
			_, _ = fmt.Fprintf(t.output, "%s:%d:%d: %s: %s [%s]\n",
				report.Origin, v.StartLine+1, 1, v.Severity, v.Message, v.Code)

			total++
		}
	}

	if total == 0 {
		_, _ = fmt.Fprintf(t.output, "All functions follow the required format\n")
	} else {
		_, _ = fmt.Fprintf(t.output, "Found %d violation(s)\n", total)
	}

	return nil
}

// DisplayCounts prints files with function and violation counts.
func (t *TUI) DisplayCounts(reports []m.FileReport) error {
	functions := 0
	violations := 0

	for _, report := range reports {
		_, _ = fmt.Fprintf(t.output, "%6d %6d  %s\n",
			report.Functions, len(report.Violations), report.Origin)

		functions += report.Functions
		violations += len(report.Violations)
	}

	_, _ = fmt.Fprintf(t.output, "%d file(s), %d function(s), %d violation(s)\n",
		len(reports), functions, violations)

	return nil
}

// DisplayFixes prints how many banners were inserted per file.
func (t *TUI) DisplayFixes(results []m.FixResult) error {
	total := 0

	for _, result := range results {
		if result.Inserted == 0 {
			continue
		}

		_, _ = fmt.Fprintf(t.output, "%s: inserted %d banner(s)\n", result.Origin, result.Inserted)

		total += result.Inserted
	}

	if total == 0 {
		_, _ = fmt.Fprintf(t.output, "Nothing to fix\n")
	}

	return nil
}

// DisplayReports opens the interactive report browser.
func (t *TUI) DisplayReports(reports []m.FileReport) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintf(t.output, "No stored reports found\n")
		return nil
	}

	program := tea.NewProgram(newReportModel(reports), tea.WithOutput(t.output))

	_, err := program.Run()

	return err
}
