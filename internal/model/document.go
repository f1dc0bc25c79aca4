// Package model defines the data structures for banner format checking.
package model

import "strings"

// Path represents a file system path.
type Path string

// Document is an immutable, line-addressable snapshot of a source text.
// All scanning operates on a Document taken at a single point in time;
// a changed file means a new Document, never a mutated one.
type Document struct {
	lines []string
}

// NewDocument splits text into lines. A trailing newline yields a final
// empty line, matching how line-addressable editors count lines.
func NewDocument(text string) Document {
	return Document{lines: strings.Split(text, "\n")}
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index i, or the empty string when i is out
// of range. Out-of-range reads are common at document edges and are not
// errors.
func (d Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}

	return d.lines[i]
}

// Text reassembles the document into a single string.
func (d Document) Text() string {
	return strings.Join(d.lines, "\n")
}
