package domain

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

func docOf(lines ...string) m.Document {
	return m.NewDocument(strings.Join(lines, "\n"))
}

func TestBoundaryScanner_FindBlockStart_DefLine(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"def foo():",
		"    return 1",
	)

	if got := b.FindBlockStart(doc, 0); got != 0 {
		t.Fatalf("expected start 0, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockStart_DecoratorChain(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"@app.route('/')",
		"@wraps(fn)",
		"",
		"def handler():",
		"    return 1",
	)

	for from := 0; from <= 3; from++ {
		if got := b.FindBlockStart(doc, from); got != 3 {
			t.Fatalf("from line %d: expected start 3, got %d", from, got)
		}
	}
}

func TestBoundaryScanner_FindBlockStart_InterruptedChain(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"@decorator",
		"x = 1",
		"def foo():",
		"    return 1",
	)

	// A plain statement between the decorator and the def breaks the
	// chain; the original index comes back unchanged.
	if got := b.FindBlockStart(doc, 0); got != 0 {
		t.Fatalf("expected original line 0, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockStart_NoDefBeforeEOF(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"@decorator",
		"",
	)

	if got := b.FindBlockStart(doc, 0); got != 0 {
		t.Fatalf("expected original line 0, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockEnd_Dedent(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"class A:",
		"    def m(self):",
		"        return 1",
		"x = 2",
	)

	if got := b.FindBlockEnd(doc, 1); got != 2 {
		t.Fatalf("expected end 2, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockEnd_BlankLinesInsideBody(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"def foo():",
		"    a = 1",
		"",
		"    b = 2",
		"def bar():",
		"    return 1",
	)

	if got := b.FindBlockEnd(doc, 0); got != 3 {
		t.Fatalf("expected end 3, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockEnd_SiblingDef(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"def foo():",
		"    return 1",
		"",
		"def bar():",
		"    return 2",
	)

	if got := b.FindBlockEnd(doc, 0); got != 2 {
		t.Fatalf("expected end 2, got %d", got)
	}
}

func TestBoundaryScanner_FindBlockEnd_BodyRunsToEOF(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"def foo():",
		"    a = 1",
		"    b = 2",
	)

	if got := b.FindBlockEnd(doc, 0); got != doc.LineCount()-1 {
		t.Fatalf("expected end %d, got %d", doc.LineCount()-1, got)
	}
}

func TestBoundaryScanner_FindBlockEnd_SameIndentStatementContinuesBlock(t *testing.T) {
	b := NewBoundaryScanner(NewRegexDetector())

	doc := docOf(
		"class A:",
		"    def m(self):",
		"        return 1",
		"    x = 2",
	)

	// Only a strict dedent or another def ends a block; a statement at
	// the def's own indentation is swallowed by the heuristic.
	if got := b.FindBlockEnd(doc, 1); got != 3 {
		t.Fatalf("expected end 3, got %d", got)
	}
}

func TestIndentWidth(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"", 0},
		{"x", 0},
		{"    x", 4},
		{"\tx", 1},
		{"\t\t  x", 4},
	}

	for _, tc := range cases {
		if got := indentWidth(tc.line); got != tc.want {
			t.Errorf("indentWidth(%q) = %d, want %d", tc.line, got, tc.want)
		}
	}
}
