package domain

import (
	"strings"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// BoundaryScanner locates the boundaries of a function block in a
// document using indentation and line-prefix heuristics only. It
// assumes a block indents consistently with either spaces or tabs;
// mixed indentation yields undefined boundaries.
type BoundaryScanner struct {
	det Detector
}

// NewBoundaryScanner constructs a BoundaryScanner over the given detector.
func NewBoundaryScanner(det Detector) BoundaryScanner {
	return BoundaryScanner{det: det}
}

// FindBlockStart resolves the effective start of the function block
// reachable from fromLine: the def line at the bottom of a chain of
// blank and decorator lines. Any other statement breaks the chain and
// the original fromLine is returned unchanged, which callers must treat
// as "no function here".
func (b BoundaryScanner) FindBlockStart(doc m.Document, fromLine int) int {
	for i := fromLine; i < doc.LineCount(); i++ {
		trimmed := strings.TrimSpace(doc.Line(i))

		if b.det.IsDefinition(trimmed) {
			return i
		}

		if trimmed == "" || b.det.IsDecorator(trimmed) {
			continue
		}

		return fromLine
	}

	return fromLine
}

// FindBlockEnd returns the last line of the block starting at
// startLine. Scanning forward, blank lines never end the block; the
// block ends just before the first line that dedents below startLine's
// indentation or begins another def. A body that runs to end of file
// ends on the document's last line.
func (b BoundaryScanner) FindBlockEnd(doc m.Document, startLine int) int {
	indent := indentWidth(doc.Line(startLine))

	for i := startLine + 1; i < doc.LineCount(); i++ {
		line := doc.Line(i)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if indentWidth(line) < indent || b.det.IsDefinition(trimmed) {
			return i - 1
		}
	}

	return doc.LineCount() - 1
}

// indentWidth counts leading whitespace characters. Tabs and spaces
// both count as one; no tab expansion is attempted.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
