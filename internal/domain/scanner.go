package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// ViolationScanner walks a document and reports every function whose
// opening banner is missing or malformed.
type ViolationScanner struct {
	det    Detector
	bounds BoundaryScanner
	format FormatValidator
}

// NewViolationScanner wires a scanner over the given detector.
func NewViolationScanner(det Detector) ViolationScanner {
	return ViolationScanner{
		det:    det,
		bounds: NewBoundaryScanner(det),
		format: NewFormatValidator(det),
	}
}

// Blocks enumerates the function blocks of a document. Every line is a
// candidate start, and blank or decorator lines above a def resolve to
// the same def line, so blocks are deduplicated by resolved start line:
// one block per def, in document order.
func (s ViolationScanner) Blocks(doc m.Document) []m.FunctionBlock {
	seen := make(map[int]struct{})

	var blocks []m.FunctionBlock

	for i := 0; i < doc.LineCount(); i++ {
		start := s.bounds.FindBlockStart(doc, i)

		name, ok := s.det.FunctionName(strings.TrimSpace(doc.Line(start)))
		if !ok {
			continue
		}

		if _, dup := seen[start]; dup {
			continue
		}

		seen[start] = struct{}{}

		blocks = append(blocks, m.FunctionBlock{
			StartLine: start,
			EndLine:   s.bounds.FindBlockEnd(doc, start),
			Name:      name,
		})
	}

	return blocks
}

// Scan produces the full violation set for a document snapshot. The
// result replaces any previously known violations for the same file;
// there is no incremental diffing.
func (s ViolationScanner) Scan(doc m.Document) []m.Violation {
	var violations []m.Violation

	for _, block := range s.Blocks(doc) {
		if s.format.IsValidFormat(doc, block.StartLine, block.Name) {
			continue
		}

		violations = append(violations, m.Violation{
			StartLine: block.StartLine,
			EndColumn: len(doc.Line(block.StartLine)),
			Name:      block.Name,
			Message:   fmt.Sprintf("Function '%s' does not follow the required format", block.Name),
			Severity:  m.SeverityWarning,
			Code:      m.CodeFunctionFormat,
		})
	}

	return violations
}
