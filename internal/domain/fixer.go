package domain

import (
	"strings"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// FixGenerator turns violations into the insertions that make the
// opening banner valid, plus the closing banner after the body.
type FixGenerator struct {
	det    Detector
	bounds BoundaryScanner
}

// NewFixGenerator wires a fix generator over the given detector.
func NewFixGenerator(det Detector) FixGenerator {
	return FixGenerator{det: det, bounds: NewBoundaryScanner(det)}
}

// GenerateFix produces the insertion batch for the given violations.
// All positions are expressed against the document snapshot that
// produced the violations; the edit applier must apply the whole batch
// against that same snapshot. Violations whose start line no longer
// parses to a function name are skipped silently, mirroring the
// scanner's skip behavior.
func (g FixGenerator) GenerateFix(doc m.Document, violations []m.Violation) []m.Insertion {
	var insertions []m.Insertion

	for _, violation := range violations {
		start := g.bounds.FindBlockStart(doc, violation.StartLine)

		name, ok := g.det.FunctionName(strings.TrimSpace(doc.Line(start)))
		if !ok {
			continue
		}

		insertions = append(insertions, m.Insertion{
			Line:   start,
			Column: 0,
			Text:   TopRule + "\n" + NameLine(name) + "\n" + TopRule + "\n",
		})

		end := g.bounds.FindBlockEnd(doc, start)

		insertions = append(insertions, m.Insertion{
			Line:   end + 1,
			Column: 0,
			Text:   "\n" + BottomRule(name) + "\n",
		})
	}

	return insertions
}
