// Package controller provides output adapters for displaying banner
// check results.
package controller

import (
	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// UI defines the interface for rendering scan and fix results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayViolations renders every violation plus a per-file summary.
	DisplayViolations(reports []m.FileReport) error
	// DisplayCounts renders files with function and violation counts.
	DisplayCounts(reports []m.FileReport) error
	// DisplayFixes renders how many banners were inserted per file.
	DisplayFixes(results []m.FixResult) error
	// DisplayReports renders previously stored reports.
	DisplayReports(reports []m.FileReport) error
}
