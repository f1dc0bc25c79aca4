package adapter

import (
	"sort"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// ApplyInsertions applies a whole insertion batch against the single
// document snapshot the batch was computed from and returns the new
// text. Insertions are applied back to front so each position stays
// valid in the original snapshot; insertions at the same position keep
// their batch order in the output.
func ApplyInsertions(doc m.Document, insertions []m.Insertion) string {
	text := doc.Text()

	offsets := make([]int, len(insertions))
	for i, ins := range insertions {
		offsets[i] = offsetOf(doc, ins.Line, ins.Column, len(text))
	}

	order := make([]int, len(insertions))
	for i := range order {
		order[i] = i
	}

	// Descending offsets; later batch entries first on ties so the
	// earlier entry ends up in front after both are spliced in.
	sort.Slice(order, func(a, b int) bool {
		if offsets[order[a]] != offsets[order[b]] {
			return offsets[order[a]] > offsets[order[b]]
		}

		return order[a] > order[b]
	})

	for _, i := range order {
		at := offsets[i]
		text = text[:at] + insertions[i].Text + text[at:]
	}

	return text
}

// offsetOf converts a 0-based line/column position into a byte offset
// within the document text. Positions past the last line clamp to the
// end of the text.
func offsetOf(doc m.Document, line, column, textLen int) int {
	if line >= doc.LineCount() {
		return textLen
	}

	offset := 0
	for i := 0; i < line; i++ {
		offset += len(doc.Line(i)) + 1
	}

	offset += column
	if offset > textLen {
		offset = textLen
	}

	return offset
}
